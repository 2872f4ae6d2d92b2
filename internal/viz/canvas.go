package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// PlotPath draws the polyline (xs[i], ys[i]) on a w x h cell canvas with
// the same scale on both axes, y pointing up. The ground (y = 0) is drawn
// when it is inside the view.
func PlotPath(xs, ys []float64, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if len(xs) == 0 || len(xs) != len(ys) {
		return c
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := math.Min(ys[0], 0), math.Max(ys[0], 0)
	for i := range xs {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	pw, ph := float64(w*2-1), float64(h*4-1)
	rangeX := math.Max(maxX-minX, 1e-9)
	rangeY := math.Max(maxY-minY, 1e-9)
	scale := math.Min(pw/rangeX, ph/rangeY)

	px := func(x float64) int { return int(math.Round((x - minX) * scale)) }
	py := func(y float64) int { return int(math.Round(ph - (y-minY)*scale)) }

	ground := py(0)
	for x := 0; x <= px(maxX); x++ {
		c.Set(x, ground)
	}

	for i := 1; i < len(xs); i++ {
		c.DrawLine(px(xs[i-1]), py(ys[i-1]), px(xs[i]), py(ys[i]))
	}
	if len(xs) == 1 {
		c.Set(px(xs[0]), py(ys[0]))
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
