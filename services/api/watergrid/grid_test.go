package watergrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	require.Equal(t, Generate(), Generate())
}

func TestGenerateShape(t *testing.T) {
	cells := Generate()
	require.Len(t, cells, Rows*Cols)
	for i, c := range cells {
		assert.Equal(t, i/Cols, c.Row)
		assert.Equal(t, i%Cols, c.Col)
		assert.Equal(t, CellID(c.Row, c.Col), c.ID)
		assert.Regexp(t, `^C[1-6]-[1-6]$`, c.ID)
	}
}

func TestGenerateRanges(t *testing.T) {
	for _, c := range Generate() {
		assert.GreaterOrEqual(t, c.Quality, MinQuality, c.ID)
		assert.LessOrEqual(t, c.Quality, MaxQuality, c.ID)
		assert.GreaterOrEqual(t, c.LeakRisk, 0.0, c.ID)
		assert.LessOrEqual(t, c.LeakRisk, 1.0, c.ID)
		assert.Greater(t, c.FlowLPM, 0.0, c.ID)
		assert.Greater(t, c.Pressure, 0.0, c.ID)
	}
}

func TestGenerateSpotValues(t *testing.T) {
	cells := Generate()
	tests := []struct {
		id   string
		want Cell
	}{
		{"C1-1", Cell{ID: "C1-1", Row: 0, Col: 0, Quality: 80, Pressure: 53.0, FlowLPM: 120.0, LeakRisk: 0.0}},
		{"C2-3", Cell{ID: "C2-3", Row: 1, Col: 2, Quality: 90, Pressure: 43.8, FlowLPM: 104.9, LeakRisk: 0.0}},
		{"C4-5", Cell{ID: "C4-5", Row: 3, Col: 4, Quality: 55, Pressure: 25.0, FlowLPM: 100.0, LeakRisk: 0.8}},
		{"C4-6", Cell{ID: "C4-6", Row: 3, Col: 5, Quality: 47, Pressure: 28.7, FlowLPM: 102.5, LeakRisk: 1.0}},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			got, ok := CellByID(cells, tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateTroubledDistrict(t *testing.T) {
	cells := Generate()

	// The contamination corridor starts one column after C4-3: its
	// quality is untouched while the three cells east of it drop.
	c43, ok := CellByID(cells, "C4-3")
	require.True(t, ok)
	assert.Equal(t, 89, c43.Quality)
	for id, want := range map[string]int{"C4-4": 63, "C4-5": 55, "C4-6": 47} {
		c, ok := CellByID(cells, id)
		require.True(t, ok, id)
		assert.Equal(t, want, c.Quality, id)
	}

	// The feeder penalty hits the whole row; only its eastern cells
	// fall under the 36 psi mark that bumps risk.
	for _, id := range []string{"C4-4", "C4-5", "C4-6"} {
		c, _ := CellByID(cells, id)
		assert.Less(t, c.Pressure, 36.0, id)
		assert.Greater(t, c.LeakRisk, 0.33, id)
	}
	assert.Equal(t, 36.3, c43.Pressure)
	assert.Equal(t, 0.0, c43.LeakRisk)
}

func TestDeriveRisk(t *testing.T) {
	tests := []struct {
		name     string
		quality  int
		pressure float64
		want     float64
	}{
		{"neutral", 75, 45, 0.0},
		{"just_below_neutral", 74, 45, 0.03},
		{"poor_quality", 55, 45, 0.5},
		{"poor_quality_low_pressure", 55, 35.9, 0.8},
		{"high_quality_clamps_to_zero", 98, 50, 0.0},
		{"floor_quality_low_pressure_caps", 40, 20, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveRisk(tc.quality, tc.pressure))
		})
	}
}

func TestDeriveRiskMonotonicInQuality(t *testing.T) {
	// Holding pressure fixed, risk never falls as quality degrades.
	for _, pressure := range []float64{30.0, 45.0} {
		prev := DeriveRisk(MaxQuality, pressure)
		for q := MaxQuality - 1; q >= MinQuality; q-- {
			r := DeriveRisk(q, pressure)
			assert.GreaterOrEqual(t, r, prev, "quality %d at %.1f psi", q, pressure)
			prev = r
		}
	}
}

func TestDegradeQuality(t *testing.T) {
	cells := Generate()

	got, ok := DegradeQuality(cells, "C4-5")
	require.True(t, ok)

	c, _ := CellByID(got, "C4-5")
	assert.Equal(t, 52, c.Quality)
	assert.Equal(t, 0.85, c.LeakRisk)

	// Input stays untouched and every other cell carries over as-is.
	orig, _ := CellByID(cells, "C4-5")
	assert.Equal(t, 55, orig.Quality)
	for i := range cells {
		if cells[i].ID == "C4-5" {
			continue
		}
		assert.Equal(t, cells[i], got[i])
	}
}

func TestDegradeQualityBounds(t *testing.T) {
	cells := []Cell{{ID: "C1-1", Quality: 41, LeakRisk: 0.97}}

	got, ok := DegradeQuality(cells, "C1-1")
	require.True(t, ok)
	assert.Equal(t, MinQuality, got[0].Quality)
	assert.Equal(t, 1.0, got[0].LeakRisk)

	// Already at the floor: stays there.
	again, ok := DegradeQuality(got, "C1-1")
	require.True(t, ok)
	assert.Equal(t, MinQuality, again[0].Quality)
	assert.Equal(t, 1.0, again[0].LeakRisk)
}

func TestDegradeQualityUnknownCell(t *testing.T) {
	cells := Generate()

	got, ok := DegradeQuality(cells, "C9-9")
	assert.False(t, ok)
	assert.Equal(t, cells, got)
	assert.True(t, &got[0] == &cells[0], "miss must return the original slice, not a copy")
}

func TestCellByID(t *testing.T) {
	cells := Generate()

	got, ok := CellByID(cells, "C6-6")
	require.True(t, ok)
	assert.Equal(t, "C6-6", got.ID)

	_, ok = CellByID(cells, "C7-1")
	assert.False(t, ok)

	_, ok = CellByID(cells, "")
	assert.False(t, ok)
}
