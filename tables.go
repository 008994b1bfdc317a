package dafTools

import (
    "bufio"
    "os"
    "strconv"
    "strings"

    "github.com/pkg/errors"
)

// ReadGenes reads a tab delimited gene annotation file and returns the
// regions in file order.
//
// gene table format
// ID      CHR     START   STOP
// AT1G01010       1       3631    5899
//
// The table is strict, a short or non numeric line is an error. The loader
// trusts the file to be sorted by chromosome and start position.
func ReadGenes(fn string) ([]Region, error) {
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

        if line == "" {
            continue
        }

        fields := strings.Split(line, "\t")

        if len(fields) < 4 {
            return nil, errors.Errorf("%s: invalid gene line %q at %d", fn, line, lineno)
        }

        chr, err := strconv.Atoi(fields[1])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        start, err := strconv.Atoi(fields[2])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        stop, err := strconv.Atoi(fields[3])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        list = append(list, Region{ID: fields[0], CHR: chr, Start: start, Stop: stop})
    }

    if err := scanner.Err(); err != nil {
        return nil, errors.Wrapf(err, "reading %s", fn)
    }

    return list, nil
}

// ReadTargets reads a tab delimited region file (CHR START STOP) and
// returns the regions in file order. Strict like the gene table.
func ReadTargets(fn string) ([]Region, error) {
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

        if line == "" {
            continue
        }

        fields := strings.Split(line, "\t")

        if len(fields) < 3 {
            return nil, errors.Errorf("%s: invalid region line %q at %d", fn, line, lineno)
        }

        chr, err := strconv.Atoi(fields[0])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        start, err := strconv.Atoi(fields[1])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        stop, err := strconv.Atoi(fields[2])

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

// ReadSitePositions reads a tab delimited site list (CHR POS), for example
// 0-fold or 4-fold degenerate site coordinates. Lines whose first field is
// not numeric (headers) are skipped.
func ReadSitePositions(fn string) ([]Pos, error) {
    inFile, err := os.Open(fn)

    if err != nil {
        return nil, errors.Wrapf(err, "opening %s", fn)
    }
    defer inFile.Close()

    scanner := bufio.NewScanner(inFile)
    scanner.Split(bufio.ScanLines)

    var list []Pos
    var lineno int

    for scanner.Scan() {
        line := chomp(scanner.Text())
        lineno++

        if line == "" {
            continue
        }

        fields := strings.Split(line, "\t")

        chr, err := strconv.Atoi(fields[0])

        if err != nil {
            // header or comment line
            continue
        }

        if len(fields) < 2 {
            return nil, errors.Errorf("%s: invalid site line %q at %d", fn, line, lineno)
        }

        pos, err := strconv.Atoi(fields[1])

        if err != nil {
            return nil, errors.Wrapf(err, "%s: line %d", fn, lineno)
        }

        list = append(list, Pos{CHR: chr, POS: pos})
    }

    if err := scanner.Err(); err != nil {
        return nil, errors.Wrapf(err, "reading %s", fn)
    }

    return list, nil
}
