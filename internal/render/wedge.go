// Package render draws a projected clock as a ring chart, either as a PNG
// image or as a grid of cells for the terminal.
package render

import (
	"math"

	"github.com/ayoisaiah/hourclock/internal/models"
)

// Wedge is the angular extent of one display segment. From and To are
// fractions of a full turn measured clockwise from 12 o'clock.
type Wedge struct {
	Segment models.DisplaySegment
	From    float64
	To      float64
	Index   int
}

// Mid returns the fraction halfway through the wedge.
func (w Wedge) Mid() float64 {
	return (w.From + w.To) / 2
}

// Wedges lays display segments out like a pie chart: each wedge is
// proportional to its duration and follows the previous one. For a clean
// partition of the hour this places every wedge at its clock position; when
// segments overlap or overflow the hour, the ring is scaled to the total.
func Wedges(display []models.DisplaySegment) []Wedge {
	var total float64

	for _, d := range display {
		if d.Duration > 0 {
			total += float64(d.Duration)
		}
	}

	if total == 0 {
		return nil
	}

	out := make([]Wedge, 0, len(display))

	var cursor float64

	for i, d := range display {
		if d.Duration <= 0 {
			continue
		}

		next := cursor + float64(d.Duration)/total

		out = append(out, Wedge{
			Index:   i,
			Segment: d,
			From:    cursor,
			To:      next,
		})

		cursor = next
	}

	// absorb float error so the ring always closes
	out[len(out)-1].To = 1

	return out
}

// WedgeAt returns the position in wedges of the wedge covering frac, or -1.
func WedgeAt(wedges []Wedge, frac float64) int {
	frac -= math.Floor(frac)

	for i := range wedges {
		if frac >= wedges[i].From && frac < wedges[i].To {
			return i
		}
	}

	return -1
}

// angleFrac converts a vector from the centre (y pointing down) into a
// clockwise fraction of a turn starting at 12 o'clock.
func angleFrac(dx, dy float64) float64 {
	a := math.Atan2(dx, -dy) / (2 * math.Pi)
	if a < 0 {
		a++
	}

	return a
}

// Grid maps a cols x rows character grid onto the ring. Each cell holds the
// position in wedges of the wedge drawn there, or -1 for empty cells.
// Terminal cells are about twice as tall as they are wide, which the
// horizontal scale compensates for.
func Grid(wedges []Wedge, cols, rows int, innerRatio float64) [][]int {
	grid := make([][]int, rows)

	cx := float64(cols) / 2
	cy := float64(rows) / 2
	radius := math.Min(cx/2, cy)

	for y := range rows {
		grid[y] = make([]int, cols)

		for x := range cols {
			dx := (float64(x) + 0.5 - cx) / 2
			dy := float64(y) + 0.5 - cy
			r := math.Hypot(dx, dy)

			if r > radius || r < radius*innerRatio {
				grid[y][x] = -1
				continue
			}

			grid[y][x] = WedgeAt(wedges, angleFrac(dx, dy))
		}
	}

	return grid
}
