package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/trajsim/internal/flight"
)

// WriteSVG draws the flight path as a polyline. Both axes share one scale
// and the ground line y = 0 is drawn when it is in view.
func WriteSVG(w io.Writer, traj *flight.Trajectory, width, height int) error {
	xs, ys := traj.Points()

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	scale := math.Min(float64(width)/rangeX, float64(height)/rangeY)
	toX := func(x float64) float64 { return (x - minX) * scale }
	toY := func(y float64) float64 { return float64(height) - (y-minY)*scale }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if gy := toY(0); gy >= 0 && gy <= float64(height) {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, gy, width, gy))
	}

	sb.WriteString(`<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`)
	for i := range xs {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(xs[i]), toY(ys[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(xs[i]), toY(ys[i])))
		}
	}
	sb.WriteString(`"/>
</svg>
`)

	_, err := io.WriteString(w, sb.String())
	return err
}
