package metropolis_test

import (
	"fmt"

	"github.com/katalvlaran/gocasinns/metropolis"
)

// ExampleEngine_DoSteps shows a guaranteed-accept downhill move: a
// deltaE <= 0 symmetric step is always executed, regardless of the RNG.
func ExampleEngine_DoSteps() {
	config := &spinConfiguration{deltas: []int64{-1}}
	engine, err := metropolis.New[*spinConfiguration](metropolis.Parameters{}, config, 0)
	if err != nil {
		panic(err)
	}

	engine.DoSteps(3, 1.0)
	fmt.Println(config.energy)
	// Output: -3
}
