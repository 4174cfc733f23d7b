package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show the 12-month consumption history",
	Args:  cobra.NoArgs,
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api.fetchUsage(ctx)
	if err != nil {
		return err
	}

	fmt.Println(styleTitle.Render("Water usage"))
	fmt.Println()
	for _, rec := range resp.Data {
		fmt.Printf("%-9s  %6.1f kL  %8s %s\n", rec.Label, rec.UsedKL, rec.Billed, rec.Currency)
	}
	fmt.Println()
	fmt.Println(styleMuted.Render(fmt.Sprintf("%d months  %.1f kL  %s %s",
		resp.Meta.Months, resp.Meta.TotalKL, resp.Meta.TotalBilled, resp.Meta.Currency)))
	return nil
}
