// CLI tool to estimate per gene derived allele frequencies from a VCF of
// variant sites, polarized against an outgroup genome alignment (MUMmer
// show-coords / show-snps output). All input files must be sorted by
// chromosome and position and chromosomes must be numeric (1, not chr1).
package main

import (
    "bufio"
    "flag"
    "fmt"
    "os"

    "github.com/zmaroti/dafTools"
)

func printHelp() {
    fmt.Fprintln(os.Stderr,
`USAGE
estDAF -coord FILE -div FILE -vcf FILE -genes FILE [-gc 0..5] [-npy FILE]

The tool estimates the derived allele frequency (DAF) of each gene from a VCF of variant sites. Sites are kept when they fall inside a gene and inside a block of the whole genome alignment against the outgroup; when the substitution list carries a call at the site, the outgroup allele is taken as the ancestral state, otherwise the reference allele is assumed ancestral. The output is one tab separated row per gene on stdout: gene, DAF and the number of sites counted. A gene with no callable genotype calls reports NaN.

required flags:
-coord FILE    alignment coordinates from 'show-coords -H -T' (MUMmer)
-div   FILE    substitutions from 'show-snps -C -I -H -T' (MUMmer)
-vcf   FILE    VCF with the variant sites, may be gzipped
-genes FILE    tab delimited gene table: name, chromosome, start, end

optional flags:
-gc  value     restrict to a mutation category: 1 [WS] 2 [SW] 3 [SS] 4 [WW] 5 [SS+WW] |default 0, all sites
-npy FILE      also write the per gene DAF values as a numpy vector`)

    os.Exit(0)
}

func main() {
    var help bool
    var coordFn, divFn, vcfFn, geneFn, npyFn string
    var gc int

    flag.BoolVar(&help,      "help", false, "print help")
    flag.StringVar(&coordFn, "coord", "", "MUMmer show-coords file")
    flag.StringVar(&divFn,   "div", "", "MUMmer show-snps file")
    flag.StringVar(&vcfFn,   "vcf", "", "VCF file with variant sites")
    flag.StringVar(&geneFn,  "genes", "", "tab delimited gene table")
    flag.StringVar(&npyFn,   "npy", "", "write DAF values as a numpy vector")
    flag.IntVar(&gc,         "gc", 0, "mutation category, 1 [WS] 2 [SW] 3 [SS] 4 [WW] 5 [SS+WW], DEFAULT: 0 (all)")

    flag.Parse()

    if help {
        printHelp()
    }

    if coordFn == "" || divFn == "" || vcfFn == "" || geneFn == "" {
        fmt.Fprintln(os.Stderr, "ERROR: The following parameters are required: -coord [file] -div [file] -vcf [file] -genes [file]")
        os.Exit(1)
    }

    if gc < 0 || gc > 5 {
        fmt.Fprintln(os.Stderr, "ERROR: allowed values for -gc are 1 [WS], 2 [SW] 3 [SS] 4 [WW] 5 [SS+WW]")
        os.Exit(1)
    }

    fmt.Fprintf(os.Stderr, "\nParameters:\n\t-coord %s\n\t-div %s\n\t-vcf %s\n\t-genes %s\n\t-gc %d\n\n", coordFn, divFn, vcfFn, geneFn, gc)

    genes, err := dafTools.ReadGenes(geneFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    coords, err := dafTools.ReadCoords(coordFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    div, err := dafTools.ReadDivergence(divFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    vcfFile, err := dafTools.OpenPlain(vcfFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }
    defer vcfFile.Close()

    rows, err := dafTools.EstimateDAF(vcfFile, genes, coords, div, gc, os.Stderr)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    writer := bufio.NewWriter(os.Stdout)

    if len(rows) > 0 {
        fmt.Fprintln(writer, "gene\tDAF\tnSites")
    }

    for _, r := range rows {
        fmt.Fprintf(writer, "%s\t%f\t%d\n", r.Gene, r.DAF(), r.Sites)
    }

    writer.Flush()

    if npyFn != "" {
        vals := make([]float64, len(rows))

        for i, r := range rows {
            vals[i] = r.DAF()
        }

        if err := dafTools.WriteVector(npyFn, vals); err != nil {
            fmt.Fprintln(os.Stderr, err)
            os.Exit(2)
        }
    }
}
