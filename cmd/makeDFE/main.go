// CLI tool to produce the unfolded site frequency spectrum and divergence
// counts required by DFE-alpha from a VCF that contains both variant and
// invariant sites. All input files must be sorted by chromosome and
// position and chromosomes must be numeric (1, not chr1). The VCF is
// expected to contain no heterozygote calls.
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
makeDFE -coord FILE -div FILE -sites FILE -vcf FILE [-region FILE] [-gc 0..5] [-npy FILE]

The tool counts, for a list of sites (for example 0-fold or 4-fold degenerate positions), how many samples carry the derived allele at each site and prints the resulting site frequency spectrum. Only sites inside a block of the whole genome alignment (and inside the optional target regions) are used; the outgroup allele of the substitution list gives the ancestral state where available, otherwise the reference allele is assumed ancestral. Missing genotype calls are imputed to the site's majority allele.

The output on stdout is one line of space separated counts indexed by derived allele count (0..sample count), followed by a line with the total site count and the count of sites with an outgroup substitution.

required flags:
-coord FILE    alignment coordinates from 'show-coords -H -T' (MUMmer)
-div   FILE    substitutions from 'show-snps -C -I -H -T' (MUMmer)
-sites FILE    tab delimited site list: chromosome, position
-vcf   FILE    full VCF with variant and invariant sites, may be gzipped

optional flags:
-region FILE   tab delimited regions to restrict to: chromosome, start, end
-gc  value     restrict to a mutation category: 1 [WS] 2 [SW] 3 [SS] 4 [WW] 5 [SS+WW] |default 0, all sites
-npy FILE      also write the spectrum as a numpy vector`)

    os.Exit(0)
}

func main() {
    var help bool
    var coordFn, divFn, siteFn, vcfFn, regionFn, npyFn string
    var gc int

    flag.BoolVar(&help,       "help", false, "print help")
    flag.StringVar(&coordFn,  "coord", "", "MUMmer show-coords file")
    flag.StringVar(&divFn,    "div", "", "MUMmer show-snps file")
    flag.StringVar(&siteFn,   "sites", "", "tab delimited site list")
    flag.StringVar(&vcfFn,    "vcf", "", "full VCF with variant and invariant sites")
    flag.StringVar(&regionFn, "region", "", "tab delimited target regions, optional")
    flag.StringVar(&npyFn,    "npy", "", "write the spectrum as a numpy vector")
    flag.IntVar(&gc,          "gc", 0, "mutation category, 1 [WS] 2 [SW] 3 [SS] 4 [WW] 5 [SS+WW], DEFAULT: 0 (all)")

    flag.Parse()

    if help {
        printHelp()
    }

    if coordFn == "" || divFn == "" || siteFn == "" || vcfFn == "" {
        fmt.Fprintln(os.Stderr, "ERROR: The following parameters are required: -coord [file] -div [file] -sites [file] -vcf [file]")
        os.Exit(1)
    }

    if gc < 0 || gc > 5 {
        fmt.Fprintln(os.Stderr, "ERROR: allowed values for -gc are 1 [WS], 2 [SW] 3 [SS] 4 [WW] 5 [SS+WW]")
        os.Exit(1)
    }

    fmt.Fprintf(os.Stderr, "\nParameters:\n\t-coord %s\n\t-div %s\n\t-sites %s\n\t-vcf %s\n", coordFn, divFn, siteFn, vcfFn)

    if regionFn != "" {
        fmt.Fprintf(os.Stderr, "\t-region %s\n", regionFn)
    }

    fmt.Fprintf(os.Stderr, "\t-gc %d\n\n", gc)

    coords, err := dafTools.ReadCoords(coordFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    sites, err := dafTools.ReadSitePositions(siteFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    // only sites covered by the alignment are informative
    sites = dafTools.KeepContained(sites, coords)

    if regionFn != "" {
        targets, err := dafTools.ReadTargets(regionFn)

        if err != nil {
            fmt.Fprintln(os.Stderr, err)
            os.Exit(2)
        }

        sites = dafTools.KeepContained(sites, targets)
    }

    div, err := dafTools.ReadDivergence(divFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    // substitution calls outside the site list can never match
    div = dafTools.KeepMatching(div, sites)

    vcfFile, err := dafTools.OpenPlain(vcfFn)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }
    defer vcfFile.Close()

    sfs, err := dafTools.BuildSFS(vcfFile, sites, div, gc, os.Stderr)

    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }

    writer := bufio.NewWriter(os.Stdout)

    for _, c := range sfs.Counts {
        fmt.Fprintf(writer, "%d ", c)
    }

    fmt.Fprintln(writer)
    fmt.Fprintf(writer, "%d %d\n", sfs.Sites, sfs.Divergent)

    writer.Flush()

    if npyFn != "" {
        vals := make([]float64, len(sfs.Counts))

        for i, c := range sfs.Counts {
            vals[i] = float64(c)
        }

        if err := dafTools.WriteVector(npyFn, vals); err != nil {
            fmt.Fprintln(os.Stderr, err)
            os.Exit(2)
        }
    }
}
