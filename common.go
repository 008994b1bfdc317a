package dafTools

import (
    "compress/gzip"
    "io"
    "os"
    "path"
    "strings"

    "github.com/pkg/errors"
)

// struct to store a gene, alignment block or target region
// tables of these are expected sorted by chromosome then start
type Region struct {
    ID    string // gene name, empty for coordinate blocks and target regions
    CHR   int    // chromosome, numeric only (1 and not chr1)
    Start int
    Stop  int
}

// struct to store one substitution (divergence) call between the
// reference genome and the outgroup sequence
type Site struct {
    CHR int
    POS int
    REF byte // reference genome allele
    ALT byte // outgroup allele, this is taken as the ancestral state
}

// a bare chromosome/position pair (neutral or selected site list)
type Pos struct {
    CHR int
    POS int
}

// genotype call of one sample at one site
const (
    HomRef  uint8 = 0
    HomAlt  uint8 = 1
    Missing uint8 = 9 // also heterozygous and malformed tokens
)

// strip trailing CR so CRLF files parse the same as LF files
func chomp(line string) string {
    return strings.TrimRight(line, "\r")
}

type gzFile struct {
    gz *gzip.Reader
    f  *os.File
}

func (g *gzFile) Read(p []byte) (int, error) {
    return g.gz.Read(p)
}

func (g *gzFile) Close() error {
    g.gz.Close()

    return g.f.Close()
}

// OpenPlain opens a text file for reading, transparently decompressing
// it when the file name ends in .gz
func OpenPlain(fn string) (io.ReadCloser, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, errors.Wrapf(err, "opening %s", fn)
    }

    if path.Ext(fn) != ".gz" {
        return inFile, nil
    }

    gz, err := gzip.NewReader(inFile)

    if err != nil {
        inFile.Close()

        return nil, errors.Wrapf(err, "opening %s", fn)
    }

    return &gzFile{gz: gz, f: inFile}, nil
}
