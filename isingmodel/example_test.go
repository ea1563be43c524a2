package isingmodel_test

import (
	"fmt"

	"github.com/katalvlaran/gocasinns/isingmodel"
)

// ExampleLattice_ProposeStep flips the site a fixed proposer selects and
// shows the resulting energy change.
func ExampleLattice_ProposeStep() {
	l := isingmodel.NewLatticeFromSpins([]int8{1, 1, 1, 1})
	step := l.ProposeStep(&fixedRNG{n: 1})
	fmt.Println(step.DeltaE())

	step.Execute()
	fmt.Println(l.CurrentEnergy())
	// Output: 4
	// 0
}
