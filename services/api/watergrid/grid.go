package watergrid

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Grid dimensions. The demo network is a fixed 6x6 layout.
const (
	Rows = 6
	Cols = 6
)

// Quality index bounds. Generation clamps into this range and the
// report side effect never degrades a cell below MinQuality.
const (
	MinQuality = 40
	MaxQuality = 98
)

// ErrNoSuchCell reports a cell id that does not belong to the grid.
var ErrNoSuchCell = errors.New("watergrid: no such cell")

// Cell is one monitored zone of the distribution network.
type Cell struct {
	ID       string  `json:"id"`
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	Quality  int     `json:"quality"`
	Pressure float64 `json:"pressure_psi"`
	FlowLPM  float64 `json:"flow_lpm"`
	LeakRisk float64 `json:"leak_risk"`
}

// Generate synthesizes the full grid in row-major order. The values are
// closed-form trigonometry over the cell index, so every call yields
// the same 36 cells.
func Generate() []Cell {
	cells := make([]Cell, 0, Rows*Cols)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			i := float64(row*Cols + col)

			q := 80.0 + 10.0*math.Sin(i)
			if row == 3 && col > 2 {
				// Contamination corridor east of the old treatment plant.
				q -= 25
			}
			quality := clampInt(int(math.Round(q)), MinQuality, MaxQuality)

			p := 45.0 + 8.0*math.Cos(i)
			if row == 3 {
				// The same district sits behind a throttled feeder.
				p -= 12
			}
			pressure := round1(p)

			cells = append(cells, Cell{
				ID:       CellID(row, col),
				Row:      row,
				Col:      col,
				Quality:  quality,
				Pressure: pressure,
				FlowLPM:  round1(120.0 + 20.0*math.Sin(i/2.0)),
				LeakRisk: DeriveRisk(quality, pressure),
			})
		}
	}
	return cells
}

// DeriveRisk scores leak likelihood from a cell's stored quality and
// pressure. Risk grows as quality falls, with a flat bump for
// under-pressurized cells.
func DeriveRisk(quality int, pressure float64) float64 {
	r := (75.0 - float64(quality)) / 40.0
	if pressure < 36 {
		r += 0.3
	}
	return round2(clampFloat(r, 0, 1))
}

// DegradeQuality applies the citizen quality-report side effect to the
// cell with the given id: quality drops by 3 (floored at MinQuality)
// and leak risk climbs by 0.05 (capped at 1). The input slice is never
// mutated; on a hit the result is a copy sharing every untouched cell.
// Unknown ids return the slice unchanged with ok=false; the caller
// decides whether that is an error.
func DegradeQuality(cells []Cell, id string) ([]Cell, bool) {
	for idx, c := range cells {
		if c.ID != id {
			continue
		}
		c.Quality = clampInt(c.Quality-3, MinQuality, MaxQuality)
		c.LeakRisk = round2(clampFloat(c.LeakRisk+0.05, 0, 1))
		out := slices.Clone(cells)
		out[idx] = c
		return out, true
	}
	return cells, false
}

// CellID formats the public 1-based identifier for a grid position.
func CellID(row, col int) string {
	return fmt.Sprintf("C%d-%d", row+1, col+1)
}

// CellByID looks a cell up by its public identifier.
func CellByID(cells []Cell, id string) (Cell, bool) {
	for _, c := range cells {
		if c.ID == id {
			return c, true
		}
	}
	return Cell{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
