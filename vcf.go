package dafTools

import (
    "bufio"
    "io"
)

// VCF column layout, tab separated
const (
    vcfChrom  = 0
    vcfPos    = 1
    vcfRef    = 3
    vcfAlt    = 4
    vcfSample = 9 // first per sample genotype column
)

// whole genome VCF lines with many samples blow the 64k default token
// limit of bufio.Scanner
const maxVcfLine = 16 * 1024 * 1024

func vcfScanner(r io.Reader) *bufio.Scanner {
    scanner := bufio.NewScanner(r)
    scanner.Split(bufio.ScanLines)
    scanner.Buffer(make([]byte, 0, 1024*1024), maxVcfLine)

    return scanner
}

// sampleFields returns the genotype columns of a split VCF line, empty
// when the line stops short of the first sample column
func sampleFields(fields []string) []string {
    if len(fields) <= vcfSample {
        return nil
    }

    return fields[vcfSample:]
}

// ParseGT classifies one genotype token. Character 0 and character 2 hold
// the two allele calls regardless of the / or | separator, everything
// that is not a clean homozygote (including heterozygotes) is Missing.
func ParseGT(tok string) uint8 {
    if len(tok) < 3 {
        return Missing
    }

    if tok[0] == '0' && tok[2] == '0' {
        return HomRef
    }

    if tok[0] == '1' && tok[2] == '1' {
        return HomAlt
    }

    return Missing
}

// Callable reports whether both allele calls of a genotype token are
// present. Heterozygotes are callable even though ParseGT maps them to
// Missing; the DAF estimate counts them in the denominator only.
func Callable(tok string) bool {
    return len(tok) >= 3 && tok[0] != '.' && tok[2] != '.'
}
