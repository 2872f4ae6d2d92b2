package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajsim/internal/flight"
)

// HeightChart plots height against sample index (uniform in time).
func HeightChart(traj *flight.Trajectory, width, height int) string {
	_, ys := traj.Points()
	if len(ys) < 2 {
		ys = append(ys, ys...)
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("height (m) over %.2f s", traj.FlightTime())),
	)
}

// Summary renders the run outcome, range, apex and metrics as a panel.
func Summary(traj *flight.Trajectory) string {
	var b strings.Builder

	b.WriteString(Title.Render("flight summary"))
	b.WriteString("\n\n")

	status := StatusLanded.Render(traj.Outcome().String())
	if traj.Outcome() == flight.TimedOut {
		status = StatusTimedOut.Render(traj.Outcome().String())
	}
	b.WriteString(row("outcome", status))
	b.WriteString(row("horizontal distance", MetricValue.Render(fmt.Sprintf("%.2f m", traj.Range()))))
	b.WriteString(row("max height", MetricValue.Render(fmt.Sprintf("%.2f m", traj.MaxHeight()))))
	b.WriteString(row("flight time", MetricValue.Render(fmt.Sprintf("%.2f s", traj.FlightTime()))))
	b.WriteString(row("steps", MetricValue.Render(fmt.Sprintf("%d", traj.Steps()))))

	metrics := traj.Metrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(row(name, MetricValue.Render(fmt.Sprintf("%.4f", metrics[name]))))
	}

	speeds := make([]float64, traj.Len())
	for i := range speeds {
		speeds[i] = traj.At(i).Speed()
	}
	b.WriteString(row("speed", Sparkline(speeds, 32)))

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Headline is the one-sentence result line.
func Headline(traj *flight.Trajectory) string {
	return fmt.Sprintf("flew %.2f m horizontally, reaching a max height of %.2f m",
		traj.Range(), traj.MaxHeight())
}

func row(label, value string) string {
	return MetricLabel.Render(fmt.Sprintf("%-20s", label)) + " " + value + "\n"
}
