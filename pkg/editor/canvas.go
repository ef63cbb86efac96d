package editor

import (
	"fmt"
	"math"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 600
)

// Canvas is the drawing area. Node positions are kept inside
// [0, Width] x [0, Height].
type Canvas struct {
	Width  float64
	Height float64
}

// DefaultCanvas returns a 1200x600 canvas.
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate reports whether both dimensions are positive.
func (c Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas must have positive size, got %gx%g", c.Width, c.Height)
	}
	return nil
}

// Center returns the middle of the canvas, where new nodes are placed.
func (c Canvas) Center() graph.Point {
	return graph.Point{X: c.Width / 2, Y: c.Height / 2}
}

// Clamp moves p componentwise into the canvas. The second result reports
// whether p was outside.
func (c Canvas) Clamp(p graph.Point) (graph.Point, bool) {
	out := graph.Point{X: clamp(p.X, c.Width), Y: clamp(p.Y, c.Height)}
	return out, out != p
}

// clamp maps NaN to 0.
func clamp(v, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > hi:
		return hi
	}
	return v
}
