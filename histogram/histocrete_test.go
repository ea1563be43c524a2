package histogram_test

import (
	"testing"

	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/histogram"
	"github.com/stretchr/testify/assert"
)

func TestHistocrete_InsertLookup(t *testing.T) {
	h := histogram.NewHistocrete[int64, int64]()
	h.Insert(5, 10)
	v, ok := h.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, int64(10), v)

	_, ok = h.Lookup(6)
	assert.False(t, ok)
}

func TestHistocrete_Add(t *testing.T) {
	h := histogram.NewHistocrete[int64, int64]()
	h.Add(1, 1)
	h.Add(1, 1)
	h.Add(2, 3)
	v, _ := h.Lookup(1)
	assert.Equal(t, int64(2), v)
	assert.Equal(t, 2, h.Len())
}

func TestHistocrete_KeysSortedForBuiltinTypes(t *testing.T) {
	h := histogram.NewHistocrete[int64, int64]()
	h.Insert(3, 1)
	h.Insert(1, 1)
	h.Insert(2, 1)
	assert.Equal(t, []int64{1, 2, 3}, h.Keys())
}

func TestHistocrete_KeysSortedForEnergyKeys(t *testing.T) {
	h := histogram.NewHistocrete[core.Int64Energy, int64]()
	h.Insert(core.Int64Energy(4), 1)
	h.Insert(core.Int64Energy(-2), 1)
	h.Insert(core.Int64Energy(0), 1)
	assert.Equal(t, []core.Int64Energy{-2, 0, 4}, h.Keys())
}

func TestHistocrete_FlatnessIgnoresZeroIncidenceBins(t *testing.T) {
	h := histogram.NewHistocrete[int64, int64]()
	h.Insert(1, 0) // never visited: must not count toward min/mean
	h.Insert(2, 10)
	h.Insert(3, 10)

	assert.Equal(t, int64(10), h.MinY())
	assert.InDelta(t, 10.0, h.MeanY(), 1e-12)
	assert.InDelta(t, 1.0, h.Flatness(), 1e-12)
}

func TestHistocrete_FlatnessEmptyIsZero(t *testing.T) {
	h := histogram.NewHistocrete[int64, int64]()
	assert.Equal(t, 0.0, h.Flatness())
}

func TestHistocrete_Reset(t *testing.T) {
	h := histogram.NewHistocrete[int64, int64]()
	h.Insert(1, 5)
	h.Reset()
	v, ok := h.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)
}
