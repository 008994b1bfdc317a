package dafTools

// GC content classes of the nucleotides: A/T are weak (two hydrogen
// bonds), G/C are strong (three). Mutation categories are named by the
// ancestral -> derived class transition.
const (
    ModeNone = 0 // no category filtering
    ModeWS   = 1 // weak -> strong
    ModeSW   = 2 // strong -> weak
    ModeSS   = 3 // strong -> strong (G<->C)
    ModeWW   = 4 // weak -> weak (A<->T)
    ModeSSWW = 5 // either SS or WW
)

func strong(b byte) bool {
    return b == 'G' || b == 'C'
}

func weak(b byte) bool {
    return b == 'A' || b == 'T'
}

// '.' tolerant variants for VCF files that carry invariant sites, where
// the missing allele matches any class
func strongDot(b byte) bool {
    return b == 'G' || b == 'C' || b == '.'
}

func weakDot(b byte) bool {
    return b == 'A' || b == 'T' || b == '.'
}

// Eligible decides whether a biallelic variant belongs to the requested
// mutation category.
//
// When a substitution call against the outgroup exists for the site the
// outgroup allele is the ancestral state, which makes the sample REF
// allele the derived one (derivedIsRef true); the directional WS and SW
// categories are then evaluated on the ancestral -> derived transition,
// so the REF/ALT roles flip. Without a substitution call the REF allele
// is taken as ancestral by convention (derivedIsRef false) and REF -> ALT
// is used directly. The symmetric SS and WW categories do not depend on
// polarity.
func Eligible(mode int, ref, alt byte, derivedIsRef bool) bool {
    switch mode {
        case ModeNone:
            return true
        case ModeSS:
            return (ref == 'G' && alt == 'C') || (ref == 'C' && alt == 'G')
        case ModeWW:
            return (ref == 'A' && alt == 'T') || (ref == 'T' && alt == 'A')
        case ModeSSWW:
            return Eligible(ModeSS, ref, alt, derivedIsRef) || Eligible(ModeWW, ref, alt, derivedIsRef)
        case ModeWS:
            if derivedIsRef {
                return strong(ref) && weak(alt)
            }

            return weak(ref) && strong(alt)
        case ModeSW:
            if derivedIsRef {
                return weak(ref) && strong(alt)
            }

            return strong(ref) && weak(alt)
    }

    return false
}

// EligibleSite is Eligible for VCF files containing invariant sites,
// where REF or ALT can be '.'. A '.' allele is compatible with either
// class but a site missing both alleles never qualifies for a category.
func EligibleSite(mode int, ref, alt byte, derivedIsRef bool) bool {
    if mode == ModeNone {
        return true
    }

    if ref == '.' && alt == '.' {
        return false
    }

    switch mode {
        case ModeSS:
            return strongDot(ref) && strongDot(alt)
        case ModeWW:
            return weakDot(ref) && weakDot(alt)
        case ModeSSWW:
            return (strongDot(ref) && strongDot(alt)) || (weakDot(ref) && weakDot(alt))
        case ModeWS:
            if derivedIsRef {
                return strongDot(ref) && weakDot(alt)
            }

            return weakDot(ref) && strongDot(alt)
        case ModeSW:
            if derivedIsRef {
                return weakDot(ref) && strongDot(alt)
            }

            return strongDot(ref) && weakDot(alt)
    }

    return false
}
