package dafTools

// The sorted merge join. Every table (genes, aligned blocks, divergence
// calls, site lists) and the query stream are sorted by chromosome then
// position, so one forward-only cursor per table answers all containment
// and equality lookups in a single pass over each table. Cursors never
// move backward and never reset; an unsorted input therefore produces
// wrong results, not an error. Sort order is the caller's contract.

// locate advances *cur through a table of n records using rel, which
// reports how record i sorts relative to the query:
//
//     -1  record is wholly before the query, the cursor may pass it
//      0  record matches (contains or equals) the query
//     +1  record is past the query, no match exists
//
// It returns the matching index and whether a match was found. On a
// miss the cursor is left on the first record not before the query.
func locate(n int, cur *int, rel func(i int) int) (int, bool) {
    for *cur < n {
        switch rel(*cur) {
            case -1:
                (*cur)++
            case 0:
                return *cur, true
            default:
                return 0, false
        }
    }

    return 0, false
}

// LocateContaining reports whether pos on chr falls inside the current or
// a later region, advancing *cur past regions that end before the query.
// Bounds are inclusive on both ends.
func LocateContaining(regions []Region, cur *int, chr, pos int) (int, bool) {
    return locate(len(regions), cur, func(i int) int {
        r := regions[i]

        if r.CHR < chr || (r.CHR == chr && r.Stop < pos) {
            return -1
        }

        if r.CHR > chr || r.Start > pos {
            return 1
        }

        return 0
    })
}

// LocateEqual reports whether an exact (chr, pos) substitution call exists,
// advancing *cur past calls before the query.
func LocateEqual(sites []Site, cur *int, chr, pos int) (int, bool) {
    return locate(len(sites), cur, func(i int) int {
        s := sites[i]

        if s.CHR < chr || (s.CHR == chr && s.POS < pos) {
            return -1
        }

        if s.CHR > chr || s.POS > pos {
            return 1
        }

        return 0
    })
}

// LocateEqualPos is LocateEqual over a bare position list.
func LocateEqualPos(positions []Pos, cur *int, chr, pos int) (int, bool) {
    return locate(len(positions), cur, func(i int) int {
        p := positions[i]

        if p.CHR < chr || (p.CHR == chr && p.POS < pos) {
            return -1
        }

        if p.CHR > chr || p.POS > pos {
            return 1
        }

        return 0
    })
}

// KeepContained filters a sorted position list down to the positions that
// fall inside one of the sorted regions, in one joint pass.
func KeepContained(positions []Pos, regions []Region) []Pos {
    var kept []Pos
    var cur int

    for _, p := range positions {
        if _, ok := LocateContaining(regions, &cur, p.CHR, p.POS); ok {
            kept = append(kept, p)
        }
    }

    return kept
}

// KeepMatching filters sorted substitution calls down to the calls whose
// coordinate appears in the sorted position list, in one joint pass.
func KeepMatching(sites []Site, positions []Pos) []Site {
    var kept []Site
    var cur int

    for _, s := range sites {
        if _, ok := LocateEqualPos(positions, &cur, s.CHR, s.POS); ok {
            kept = append(kept, s)
        }
    }

    return kept
}
