package dafTools

import (
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/pkg/errors"
)

// SFS is the unfolded site frequency spectrum of one run.
type SFS struct {
    Counts    []int // sites by derived allele count, indexed 0..sample count
    Sites     int   // eligible sites counted
    Divergent int   // subset with a substitution call against the outgroup
}

// BuildSFS streams a VCF that carries both variant and invariant sites
// and builds the site frequency spectrum over the given site list.
//
// The sample count comes from the #CHROM header line, which must precede
// the data. A data line is counted when its position exactly matches an
// entry of sites; polarity and REF consistency follow EstimateDAF, except
// that the ALT allele is only checked against the substitution call when
// a category mode is active, as invariant lines have no ALT.
//
// Per sample calls are clean homozygotes or missing (heterozygotes are
// missing here, the input is expected hom only). A missing call is
// imputed to the majority allele among the called homozygotes: it counts
// as derived only when the derived homozygotes strictly outnumber the
// ancestral ones, so a tie imputes ancestral. All inputs must be sorted
// by chromosome then position.
func BuildSFS(vcf io.Reader, sites []Pos, div []Site, mode int, diag io.Writer) (*SFS, error) {
    scanner := vcfScanner(vcf)

    var sfs *SFS
    var geno []uint8
    var siteCur, divCur int

    for scanner.Scan() {
        line := chomp(scanner.Text())

        fields := strings.Split(line, "\t")

        if fields[0] == "#CHROM" {
            n := len(fields) - vcfSample

            if n < 0 {
                n = 0
            }

            geno = make([]uint8, n)
            sfs = &SFS{Counts: make([]int, n+1)}

            continue
        }

        chr, err := strconv.Atoi(fields[vcfChrom])

        if err != nil {
            continue
        }

        if sfs == nil {
            return nil, errors.New("vcf data line before the #CHROM header")
        }

        if len(fields) <= vcfAlt || fields[vcfRef] == "" || fields[vcfAlt] == "" {
            continue
        }

        pos, err := strconv.Atoi(fields[vcfPos])

        if err != nil {
            continue
        }

        if _, ok := LocateEqualPos(sites, &siteCur, chr, pos); !ok {
            continue
        }

        di, derivedIsRef := LocateEqual(div, &divCur, chr, pos)

        ref := fields[vcfRef][0]
        alt := fields[vcfAlt][0]

        if derivedIsRef && ref != div[di].REF {
            fmt.Fprintf(diag, "Warning: ref alleles differ at chr %d pos %d\n", chr, pos)

            continue
        }

        if mode != ModeNone {
            if derivedIsRef && alt != div[di].ALT {
                continue
            }

            if !EligibleSite(mode, ref, alt, derivedIsRef) {
                continue
            }
        }

        var nRef, nAlt int

        for i := range geno {
            geno[i] = Missing
        }

        for i, tok := range sampleFields(fields) {
            if i >= len(geno) {
                break
            }

            geno[i] = ParseGT(tok)

            if geno[i] == HomRef {
                nRef++
            } else if geno[i] == HomAlt {
                nAlt++
            }
        }

        var count int

        for _, g := range geno {
            if derivedIsRef {
                if g == HomRef || (g == Missing && nRef > nAlt) {
                    count++
                }
            } else {
                if g == HomAlt || (g == Missing && nAlt > nRef) {
                    count++
                }
            }
        }

        sfs.Counts[count]++

        if derivedIsRef {
            sfs.Divergent++
        }

        sfs.Sites++
    }

    if err := scanner.Err(); err != nil {
        return nil, errors.Wrap(err, "reading vcf")
    }

    if sfs == nil {
        return nil, errors.New("vcf has no #CHROM header")
    }

    return sfs, nil
}
