// Package render is a thin presentation shell over the core packages: it
// lays the nodes of a graph out on a circle and emits an SVG picture of
// the adjacency, optionally highlighting a witness Hamiltonian cycle.
//
// It only reads the graph through its public queries and performs no
// algorithmic work of its own.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/kul-sudo/graphs/graph"
)

// Point is a node position in the emitted picture.
type Point struct {
	X float64
	Y float64
}

// Drawing geometry; the canvas leaves a margin around the layout circle.
const (
	GraphRadius = 500.0
	NodeRadius  = 10.0
	margin      = 2 * NodeRadius
	edgeWidth   = 5.0
	cycleWidth  = 15.0
)

// Layout places n nodes evenly on a circle of the given radius centered
// at (cx, cy), node 0 at angle zero, indices increasing counterclockwise.
//
// Complexity: O(n).
func Layout(n int, radius, cx, cy float64) []Point {
	if n <= 0 {
		return nil
	}
	gap := 2 * math.Pi / float64(n)
	points := make([]Point, n)
	for i := range points {
		angle := float64(i) * gap
		points[i] = Point{
			X: radius*math.Cos(angle) + cx,
			Y: radius*math.Sin(angle) + cy,
		}
	}

	return points
}

// SVG writes g as an SVG document: all present edges in white on a dark
// canvas, the witness cycle (if non-nil) as a thicker green overlay, and
// the nodes on top. A nil cycle draws the plain graph; a non-nil cycle is
// trusted to be a closed node sequence (use hamilton.ValidateCycle first
// when in doubt).
func SVG(w io.Writer, g *graph.Graph, cycle []int) error {
	if g == nil {
		return errors.New("render: nil graph")
	}

	n := g.NodeCount()
	size := 2 * (GraphRadius + margin)
	center := size / 2
	points := Layout(n, GraphRadius, center, center)

	var b []byte
	b = append(b, fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		size, size, size, size)...)
	b = append(b, fmt.Sprintf(`<rect width="100%%" height="100%%" fill="black"/>`+"\n")...)

	// Present edges, upper triangle only.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(i, j) {
				continue
			}
			b = appendLine(b, points[i], points[j], "white", edgeWidth)
		}
	}

	// Witness cycle overlay.
	for i := 0; i+1 < len(cycle); i++ {
		b = appendLine(b, points[cycle[i]], points[cycle[i+1]], "darkgreen", cycleWidth)
	}

	// Nodes on top so endpoints stay visible.
	for _, p := range points {
		b = append(b, fmt.Sprintf(
			`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="white"/>`+"\n",
			p.X, p.Y, NodeRadius)...)
	}
	b = append(b, "</svg>\n"...)

	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "render: write svg")
	}

	return nil
}

func appendLine(b []byte, from, to Point, stroke string, width float64) []byte {
	return append(b, fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.0f"/>`+"\n",
		from.X, from.Y, to.X, to.Y, stroke, width)...)
}
