package dafTools

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func testRegions() []Region {
    return []Region{
        {ID: "g1", CHR: 1, Start: 100, Stop: 200},
        {ID: "g2", CHR: 1, Start: 300, Stop: 400},
        {ID: "g3", CHR: 2, Start: 50, Stop: 150},
        {ID: "g4", CHR: 3, Start: 10, Stop: 20},
    }
}

func TestLocateContaining(t *testing.T) {
    regions := testRegions()

    tests := []struct {
        chr, pos int
        index    int
        found    bool
    }{
        {1, 99, 0, false},  // before the first region
        {1, 100, 0, true},  // inclusive start
        {1, 200, 0, true},  // inclusive end
        {1, 250, 0, false}, // gap between regions
        {1, 300, 1, true},
        {1, 500, 0, false}, // past the last region of chr 1
        {2, 60, 2, true},   // chromosome jump
        {3, 15, 3, true},
        {3, 30, 0, false}, // table exhausted
    }

    var cur int
    prev := 0

    for _, test := range tests {
        idx, ok := LocateContaining(regions, &cur, test.chr, test.pos)

        assert.Equal(t, test.found, ok, "query %d:%d", test.chr, test.pos)

        if test.found {
            assert.Equal(t, test.index, idx, "query %d:%d", test.chr, test.pos)
        }

        // the cursor never moves backward
        assert.GreaterOrEqual(t, cur, prev)
        prev = cur
    }
}

// a persistent cursor over sorted queries must agree with rescanning the
// table from the start for every query
func TestLocateMonotoneMatchesRescan(t *testing.T) {
    regions := testRegions()

    queries := []Pos{
        {1, 50}, {1, 100}, {1, 150}, {1, 201}, {1, 350}, {1, 401},
        {2, 49}, {2, 50}, {2, 150}, {2, 151},
        {3, 10}, {3, 20}, {3, 21},
    }

    var cur int

    for _, q := range queries {
        idx, ok := LocateContaining(regions, &cur, q.CHR, q.POS)

        fresh := 0
        fidx, fok := LocateContaining(regions, &fresh, q.CHR, q.POS)

        require.Equal(t, fok, ok, "query %d:%d", q.CHR, q.POS)
        require.Equal(t, fidx, idx, "query %d:%d", q.CHR, q.POS)
    }
}

func TestLocateEqual(t *testing.T) {
    sites := []Site{
        {CHR: 1, POS: 100, REF: 'A', ALT: 'G'},
        {CHR: 1, POS: 200, REF: 'C', ALT: 'T'},
        {CHR: 2, POS: 50, REF: 'G', ALT: 'A'},
    }

    var cur int

    _, ok := LocateEqual(sites, &cur, 1, 99)
    assert.False(t, ok)

    idx, ok := LocateEqual(sites, &cur, 1, 100)
    require.True(t, ok)
    assert.Equal(t, 0, idx)

    // cursor stays put on a match, the same query still hits
    idx, ok = LocateEqual(sites, &cur, 1, 100)
    require.True(t, ok)
    assert.Equal(t, 0, idx)

    _, ok = LocateEqual(sites, &cur, 1, 150)
    assert.False(t, ok)

    idx, ok = LocateEqual(sites, &cur, 2, 50)
    require.True(t, ok)
    assert.Equal(t, 2, idx)

    _, ok = LocateEqual(sites, &cur, 3, 1)
    assert.False(t, ok)
}

func TestLocateEqualPos(t *testing.T) {
    positions := []Pos{{1, 10}, {1, 20}, {2, 10}}

    var cur int

    idx, ok := LocateEqualPos(positions, &cur, 1, 20)
    require.True(t, ok)
    assert.Equal(t, 1, idx)

    // a passed position can no longer match, by design
    _, ok = LocateEqualPos(positions, &cur, 1, 10)
    assert.False(t, ok)

    idx, ok = LocateEqualPos(positions, &cur, 2, 10)
    require.True(t, ok)
    assert.Equal(t, 2, idx)
}

func TestKeepContained(t *testing.T) {
    regions := []Region{
        {CHR: 1, Start: 100, Stop: 200},
        {CHR: 2, Start: 10, Stop: 20},
    }

    positions := []Pos{
        {1, 50}, {1, 100}, {1, 150}, {1, 201},
        {2, 10}, {2, 21},
    }

    kept := KeepContained(positions, regions)

    assert.Equal(t, []Pos{{1, 100}, {1, 150}, {2, 10}}, kept)
}

func TestKeepMatching(t *testing.T) {
    positions := []Pos{{1, 100}, {1, 200}, {2, 50}}

    sites := []Site{
        {CHR: 1, POS: 99, REF: 'A', ALT: 'T'},
        {CHR: 1, POS: 100, REF: 'A', ALT: 'G'},
        {CHR: 2, POS: 50, REF: 'G', ALT: 'A'},
        {CHR: 2, POS: 60, REF: 'C', ALT: 'T'},
    }

    kept := KeepMatching(sites, positions)

    require.Len(t, kept, 2)
    assert.Equal(t, Site{CHR: 1, POS: 100, REF: 'A', ALT: 'G'}, kept[0])
    assert.Equal(t, Site{CHR: 2, POS: 50, REF: 'G', ALT: 'A'}, kept[1])
}

func TestKeepContainedEmpty(t *testing.T) {
    assert.Empty(t, KeepContained(nil, testRegions()))
    assert.Empty(t, KeepContained([]Pos{{1, 1}}, nil))
}
