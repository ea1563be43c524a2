package observable_test

import (
	"testing"

	"github.com/katalvlaran/gocasinns/observable"
	"github.com/stretchr/testify/assert"
)

func TestVectorAccumulator_AccumulatePreservesOrder(t *testing.T) {
	a := observable.NewVectorAccumulator[int](0)
	a.Accumulate(1)
	a.Accumulate(2)
	a.Accumulate(3)

	assert.Equal(t, []int{1, 2, 3}, a.Samples())
	assert.Equal(t, 3, a.Len())
}

func TestVectorAccumulator_EmptyIsEmpty(t *testing.T) {
	a := observable.NewVectorAccumulator[float64](0)
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Samples())
}

func TestObservableFunc_Observe(t *testing.T) {
	var obs observable.Observable[int, int] = observable.ObservableFunc[int, int](func(c int) int {
		return c * 2
	})
	assert.Equal(t, 8, obs.Observe(4))
}
