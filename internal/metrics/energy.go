package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// EnergyDrift reports |E_last - E_first| / |E_first| for systems that
// implement dynamo.Hamiltonian, and 0 otherwise.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	samples       int
	dyn           dynamo.Hamiltonian
}

func NewEnergyDrift(dyn dynamo.System) *EnergyDrift {
	h, _ := dyn.(dynamo.Hamiltonian)
	return &EnergyDrift{
		name: "energy_drift",
		dyn:  h,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.State, t float64) {
	if e.dyn == nil {
		return
	}

	energy := e.dyn.Energy(x)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyDrift) Value() float64 {
	if e.samples == 0 || e.initialEnergy == 0 {
		return 0
	}
	return math.Abs(e.currentEnergy-e.initialEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}
