package metropolis_test

import (
	"testing"

	"github.com/katalvlaran/gocasinns/metropolis"
)

func BenchmarkDoSteps(b *testing.B) {
	config := &spinConfiguration{deltas: []int64{-1, 1}}
	engine, err := metropolis.New[*spinConfiguration](metropolis.Parameters{}, config, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	engine.DoSteps(uint64(b.N), 1.0)
}
