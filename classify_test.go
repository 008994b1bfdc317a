package dafTools

import (
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
)

// every ref/alt nucleotide pair must classify deterministically in every
// mode, for both polarities
func TestEligibleGrid(t *testing.T) {
    nucs := []byte{'A', 'C', 'G', 'T'}

    for _, ref := range nucs {
        for _, alt := range nucs {
            for _, derivedIsRef := range []bool{false, true} {
                anc, der := ref, alt

                if derivedIsRef {
                    anc, der = alt, ref
                }

                name := fmt.Sprintf("%c>%c/derivedIsRef=%v", ref, alt, derivedIsRef)

                assert.True(t, Eligible(ModeNone, ref, alt, derivedIsRef), name)

                assert.Equal(t, weak(anc) && strong(der), Eligible(ModeWS, ref, alt, derivedIsRef), name)
                assert.Equal(t, strong(anc) && weak(der), Eligible(ModeSW, ref, alt, derivedIsRef), name)

                assert.Equal(t, strong(ref) && strong(alt) && ref != alt, Eligible(ModeSS, ref, alt, derivedIsRef), name)
                assert.Equal(t, weak(ref) && weak(alt) && ref != alt, Eligible(ModeWW, ref, alt, derivedIsRef), name)

                // SS+WW holds exactly when SS or WW holds
                ssww := Eligible(ModeSS, ref, alt, derivedIsRef) || Eligible(ModeWW, ref, alt, derivedIsRef)
                assert.Equal(t, ssww, Eligible(ModeSSWW, ref, alt, derivedIsRef), name)
            }
        }
    }
}

func TestEligiblePolarityFlips(t *testing.T) {
    // A -> G is weak to strong reading ref to alt; with the reference
    // allele derived the transition reads G -> A instead
    assert.True(t, Eligible(ModeWS, 'A', 'G', false))
    assert.False(t, Eligible(ModeWS, 'A', 'G', true))

    assert.True(t, Eligible(ModeSW, 'A', 'G', true))
    assert.False(t, Eligible(ModeSW, 'A', 'G', false))
}

func TestEligibleSiteDots(t *testing.T) {
    // invariant lines carry '.' for the absent allele
    assert.True(t, EligibleSite(ModeSS, 'G', '.', false))
    assert.True(t, EligibleSite(ModeSS, '.', 'C', false))
    assert.True(t, EligibleSite(ModeWW, 'A', '.', false))
    assert.True(t, EligibleSite(ModeWS, 'A', '.', false))
    assert.True(t, EligibleSite(ModeWS, '.', 'G', false))

    assert.False(t, EligibleSite(ModeSS, 'A', '.', false))
    assert.False(t, EligibleSite(ModeWS, 'G', '.', false))

    // a site with neither allele never qualifies for a category
    for _, mode := range []int{ModeWS, ModeSW, ModeSS, ModeWW, ModeSSWW} {
        assert.False(t, EligibleSite(mode, '.', '.', false))
        assert.False(t, EligibleSite(mode, '.', '.', true))
    }

    // but passes with filtering disabled
    assert.True(t, EligibleSite(ModeNone, '.', '.', false))
}

func TestEligibleSiteMatchesEligibleOnNucleotides(t *testing.T) {
    nucs := []byte{'A', 'C', 'G', 'T'}

    // on plain nucleotides the '.' tolerant WS/SW agree with the strict
    // classifier; SS/WW are class based here and pair based in Eligible,
    // which only differs on the ref==alt pairs a VCF never carries
    for _, ref := range nucs {
        for _, alt := range nucs {
            if ref == alt {
                continue
            }

            for _, derivedIsRef := range []bool{false, true} {
                for _, mode := range []int{ModeWS, ModeSW, ModeSS, ModeWW, ModeSSWW} {
                    assert.Equal(t, Eligible(mode, ref, alt, derivedIsRef),
                        EligibleSite(mode, ref, alt, derivedIsRef),
                        "mode %d %c>%c", mode, ref, alt)
                }
            }
        }
    }
}
