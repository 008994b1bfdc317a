package dafTools

import (
    "github.com/kshedden/gonpy"
    "github.com/pkg/errors"
)

// WriteVector dumps a float64 vector as a NumPy .npy file so the results
// can be picked up directly by the downstream python tooling (DFE-alpha
// input preparation, plotting).
func WriteVector(fn string, vals []float64) error {
    wtr, err := gonpy.NewFileWriter(fn)

    if err != nil {
        return errors.Wrapf(err, "creating %s", fn)
    }

    if err := wtr.WriteFloat64(vals); err != nil {
        return errors.Wrapf(err, "writing %s", fn)
    }

    return nil
}
