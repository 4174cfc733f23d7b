package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Render the 6x6 monitoring grid",
	Args:  cobra.NoArgs,
	RunE:  runGrid,
}

var cellCmd = &cobra.Command{
	Use:   "cell <id>",
	Short: "Show one cell with its quality band and risk tier",
	Args:  cobra.ExactArgs(1),
	RunE:  runCell,
}

func runGrid(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api.fetchGrid(ctx)
	if err != nil {
		return err
	}

	fmt.Print(renderGrid(resp.Data, resp.Meta.Selected))
	return nil
}

// renderGrid lays the cells out row by row, colored by risk tier. The
// selected cell, if any, is underlined.
func renderGrid(cells []cellPayload, selected string) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("AquaView grid") + "\n\n")

	for i, cell := range cells {
		tier := watergrid.RiskTier(cell.LeakRisk).String()
		st := tierStyle(tier)
		if cell.ID == selected {
			st = st.Bold(true).Underline(true)
		}
		b.WriteString(st.Render(fmt.Sprintf("%s q%02d", cell.ID, cell.Quality)))
		if (i+1)%watergrid.Cols == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}

	b.WriteString("\n")
	b.WriteString(styleMuted.Render("risk:") + " " +
		styleGood.Render("low") + " " +
		styleWarn.Render("medium") + " " +
		styleBad.Render("high") + "\n")
	if selected != "" {
		b.WriteString(styleMuted.Render("selected: "+selected) + "\n")
	}
	return b.String()
}

func runCell(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	cell, err := api.fetchCell(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleTitle.Render(cell.ID))
	fmt.Printf("quality    %d (%s)\n", cell.Quality, bandStyle(cell.QualityBand).Render(cell.QualityBand))
	fmt.Printf("pressure   %.1f psi\n", cell.Pressure)
	fmt.Printf("flow       %.1f L/min\n", cell.FlowLPM)
	fmt.Printf("leak risk  %.2f (%s)\n", cell.LeakRisk, tierStyle(cell.RiskTier).Render(cell.RiskTier))
	return nil
}
