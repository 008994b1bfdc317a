package dafTools

import (
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/pkg/errors"
)

// GeneDAF holds the running derived allele counts of one gene.
type GeneDAF struct {
    Gene     string
    Derived  int // derived allele homozygote calls over all sites of the gene
    Callable int // sample calls with both alleles present
    Sites    int // variant lines fully counted for the gene
}

// DAF is Derived/Callable. A gene with no callable sample calls yields
// NaN, never a panic.
func (g GeneDAF) DAF() float64 {
    return float64(g.Derived) / float64(g.Callable)
}

// EstimateDAF streams a VCF of variant sites and returns one row per gene
// with the pooled derived allele counts of its sites.
//
// A variant line is counted when its position falls in a gene and in an
// aligned block; if a substitution call exists at the position the REF
// allele is the derived one (see Eligible) and the site must agree with
// the call: a REF mismatch is reported on diag and skips the site, an ALT
// mismatch skips it silently. Counters flush to a row whenever the gene
// changes and once more at end of stream. All four inputs and the VCF
// itself must be sorted by chromosome then position.
func EstimateDAF(vcf io.Reader, genes, coords []Region, div []Site, mode int, diag io.Writer) ([]GeneDAF, error) {
    scanner := vcfScanner(vcf)

    var rows []GeneDAF
    var cur GeneDAF
    var haveGene bool
    var geneCur, coordCur, divCur int

    for scanner.Scan() {
        line := chomp(scanner.Text())

        fields := strings.Split(line, "\t")

        // header lines and non numeric chromosomes
        chr, err := strconv.Atoi(fields[vcfChrom])

        if err != nil {
            continue
        }

        if len(fields) <= vcfAlt || fields[vcfRef] == "" || fields[vcfAlt] == "" {
            continue
        }

        pos, err := strconv.Atoi(fields[vcfPos])

        if err != nil {
            continue
        }

        gi, ok := LocateContaining(genes, &geneCur, chr, pos)

        if !ok {
            continue
        }

        if _, ok := LocateContaining(coords, &coordCur, chr, pos); !ok {
            continue
        }

        di, derivedIsRef := LocateEqual(div, &divCur, chr, pos)

        // the gene boundary flushes before the current line is counted,
        // so the line below belongs to the new gene
        if !haveGene {
            cur.Gene = genes[gi].ID
            haveGene = true
        } else if cur.Gene != genes[gi].ID {
            rows = append(rows, cur)

            cur = GeneDAF{Gene: genes[gi].ID}
        }

        ref := fields[vcfRef][0]
        alt := fields[vcfAlt][0]

        if derivedIsRef && ref != div[di].REF {
            fmt.Fprintf(diag, "Warning: ref alleles differ at chr %d pos %d\n", chr, pos)

            continue
        }

        if derivedIsRef && alt != div[di].ALT {
            continue
        }

        if !Eligible(mode, ref, alt, derivedIsRef) {
            continue
        }

        for _, tok := range sampleFields(fields) {
            if len(tok) < 3 {
                continue
            }

            if derivedIsRef {
                if tok[0] == '0' && tok[2] == '0' {
                    cur.Derived++
                }
            } else {
                if tok[0] == '1' && tok[2] == '1' {
                    cur.Derived++
                }
            }

            if Callable(tok) {
                cur.Callable++
            }
        }

        cur.Sites++
    }

    if err := scanner.Err(); err != nil {
        return nil, errors.Wrap(err, "reading vcf")
    }

    if haveGene {
        rows = append(rows, cur)
    }

    return rows, nil
}
