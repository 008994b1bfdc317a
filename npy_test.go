package dafTools

import (
    "path/filepath"
    "testing"

    "github.com/kshedden/gonpy"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestWriteVector(t *testing.T) {
    fn := filepath.Join(t.TempDir(), "sfs.npy")

    vals := []float64{3, 0, 1, 0, 2}

    require.NoError(t, WriteVector(fn, vals))

    r, err := gonpy.NewFileReader(fn)
    require.NoError(t, err)

    data, err := r.GetFloat64()
    require.NoError(t, err)

    assert.Equal(t, vals, data)
}
