package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
)

type Registry struct {
	integrators map[string]func() dynamo.Integrator
	aliases     map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() dynamo.Integrator),
		aliases:     make(map[string]string),
	}

	r.integrators["semi_implicit_euler"] = func() dynamo.Integrator { return integrators.NewSemiImplicitEuler() }
	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }

	r.aliases["symplectic"] = "semi_implicit_euler"

	return r
}

// Canonical resolves aliases.
func (r *Registry) Canonical(name string) string {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[r.Canonical(name)]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, r.ListIntegrators())
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
