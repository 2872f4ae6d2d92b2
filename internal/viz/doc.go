// Package viz renders trajectories for the terminal.
//
//   - [Canvas]: braille sub-pixel canvas (2x4 dots per cell)
//   - [PlotPath]: x-y flight path with equal axis scale
//   - [HeightChart]: height over time via asciigraph
//   - [Summary]: lipgloss panel with range, apex and metrics
package viz
