package optim

import (
	"math"

	"github.com/san-kum/trajsim/internal/flight"
)

// Objective scores a trajectory; GridSearch keeps the highest score.
type Objective func(*flight.Trajectory) float64

// Range is the default objective.
func Range(tr *flight.Trajectory) float64 { return tr.Range() }

// Best is the winning grid point.
type Best struct {
	Params map[string]float64
	Score  float64
	Traj   *flight.Trajectory
}

// GridSearch walks the Cartesian product of the given parameter values.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search applies every grid point to base via flight.Config.WithParam and
// simulates it. Points that fail validation or simulation are skipped. It
// returns nil when no point is valid.
func (g *GridSearch) Search(base flight.Config, objective Objective) *Best {
	if objective == nil {
		objective = Range
	}

	var best *Best
	g.searchRecursive(0, base, make(map[string]float64), objective, &best)
	return best
}

func (g *GridSearch) searchRecursive(
	depth int,
	cfg flight.Config,
	current map[string]float64,
	objective Objective,
	best **Best,
) {
	if depth == len(g.paramNames) {
		traj, err := flight.Simulate(cfg)
		if err != nil {
			return
		}

		score := objective(traj)
		if math.IsNaN(score) {
			return
		}
		if *best == nil || score > (*best).Score {
			params := make(map[string]float64, len(current))
			for k, v := range current {
				params[k] = v
			}
			*best = &Best{Params: params, Score: score, Traj: traj}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next, err := cfg.WithParam(paramName, val)
		if err != nil {
			continue
		}
		current[paramName] = val
		g.searchRecursive(depth+1, next, current, objective, best)
	}
	delete(current, paramName)
}

// MaxPoints bounds the length of a Linspace axis.
const MaxPoints = 1 << 16

// Linspace returns from, from+step, ... up to and including to. It returns
// nil for non-finite inputs, empty ranges, or axes longer than MaxPoints.
func Linspace(from, to, step float64) []float64 {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	}
	if step <= 0 || to < from {
		return nil
	}
	count := math.Floor((to-from)/step+1e-9) + 1
	if count > MaxPoints {
		return nil
	}
	n := int(count)
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}

// AngleSweep finds the launch angle in [from, to] that maximizes range.
func AngleSweep(base flight.Config, from, to, step float64) *Best {
	g := NewGridSearch([]string{flight.ParamAngle}, [][]float64{Linspace(from, to, step)})
	return g.Search(base, Range)
}
