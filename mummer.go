package dafTools

import (
    "bufio"
    "os"
    "strconv"
    "strings"

    "github.com/pkg/errors"
)

// Loaders for MUMmer whole genome alignment output.
//
// ReadCoords parses 'show-coords -H -T' output and ReadDivergence parses
// 'show-snps -C -I -H -T' output. Both formats carry extra alignment
// statistic columns that are not used here; the reference chromosome is
// taken from column 8 and must be purely numeric. Rows whose column 8 is
// not numeric (headers, scaffold names, malformed rows) are silently
// skipped, the downstream merge over sorted tables depends on exactly this
// behaviour, so keep it.

// show-coords -H -T columns: S1 E1 S2 E2 LEN1 LEN2 %IDY CHR ...
const (
    coordStart = 0
    coordStop  = 1
    coordChr   = 7
)

// show-snps -C -I -H -T columns: P1 REF ALT P2 BUFF DIST FRM CHR ...
const (
    divPos = 0
    divRef = 1
    divAlt = 2
    divChr = 7
)

// ReadCoords returns the aligned blocks (reference coordinates) in file order.
func ReadCoords(fn string) ([]Region, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, errors.Wrapf(err, "opening %s", fn)
    }
    defer inFile.Close()

    scanner := bufio.NewScanner(inFile)
    scanner.Split(bufio.ScanLines)

    var list []Region
    var lineno int

    for scanner.Scan() {
        line := chomp(scanner.Text())
        lineno++

        fields := strings.Split(line, "\t")

        if len(fields) <= coordChr {
            continue
        }

        chr, err := strconv.Atoi(fields[coordChr])

        if err != nil {
            continue
        }

        start, err := strconv.Atoi(fields[coordStart])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        stop, err := strconv.Atoi(fields[coordStop])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        list = append(list, Region{CHR: chr, Start: start, Stop: stop})
    }

    if err := scanner.Err(); err != nil {
        return nil, errors.Wrapf(err, "reading %s", fn)
    }

    return list, nil
}

// ReadDivergence returns the substitution calls between the reference and
// the outgroup genome in file order. Only the first character of the
// allele columns is kept.
func ReadDivergence(fn string) ([]Site, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, errors.Wrapf(err, "opening %s", fn)
    }
    defer inFile.Close()

    scanner := bufio.NewScanner(inFile)
    scanner.Split(bufio.ScanLines)

    var list []Site
    var lineno int

    for scanner.Scan() {
        line := chomp(scanner.Text())
        lineno++

        fields := strings.Split(line, "\t")

        if len(fields) <= divChr {
            continue
        }

        chr, err := strconv.Atoi(fields[divChr])

        if err != nil {
            continue
        }

        pos, err := strconv.Atoi(fields[divPos])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        if fields[divRef] == "" || fields[divAlt] == "" {
            return nil, errors.Errorf("%s: empty allele at line %d", fn, lineno)
        }

        list = append(list, Site{CHR: chr, POS: pos, REF: fields[divRef][0], ALT: fields[divAlt][0]})
    }

    if err := scanner.Err(); err != nil {
        return nil, errors.Wrapf(err, "reading %s", fn)
    }

    return list, nil
}
