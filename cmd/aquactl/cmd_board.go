package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "One-shot dashboard: grid, alerts, and portal summary",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	var (
		grid    gridResponse
		alerts  alertsResponse
		summary summaryPayload
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		grid, err = api.fetchGrid(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = api.fetchAlerts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = api.fetchSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Print(renderGrid(grid.Data, grid.Meta.Selected))
	fmt.Println()
	fmt.Print(renderAlerts(alerts))
	fmt.Println()
	fmt.Print(renderSummary(summary))
	return nil
}

func renderSummary(s summaryPayload) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Portal summary") + "\n\n")
	b.WriteString(fmt.Sprintf("eco-points  %d\n", s.EcoPoints))
	b.WriteString(fmt.Sprintf("reports     %d\n", s.ReportsSubmitted))
	if s.LatestUsage != nil {
		b.WriteString(fmt.Sprintf("last month  %s: %.1f kL, %s %s\n",
			s.LatestUsage.Label, s.LatestUsage.UsedKL, s.LatestUsage.Billed, s.LatestUsage.Currency))
	}
	if s.SelectedCell != nil {
		b.WriteString(fmt.Sprintf("selected    %s\n", s.SelectedCell.ID))
	}
	if s.Notice != "" {
		b.WriteString(styleInfo.Render("notice: "+s.Notice) + "\n")
	}
	return b.String()
}
