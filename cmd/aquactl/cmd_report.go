package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagReportCell  string
	flagReportType  string
	flagReportNotes string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Submit a citizen report and collect the eco-points bonus",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagReportCell, "cell", "", "cell the report is about, e.g. C4-5")
	reportCmd.Flags().StringVar(&flagReportType, "type", "", "issue type: leak, quality, theft or pressure")
	reportCmd.Flags().StringVar(&flagReportNotes, "notes", "", "free-form description")
	_ = reportCmd.MarkFlagRequired("type")
	_ = reportCmd.MarkFlagRequired("notes")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	receipt, err := api.submitReport(ctx, flagReportCell, flagReportType, flagReportNotes)
	if err != nil {
		return err
	}

	fmt.Println(styleGood.Render(receipt.Message))
	fmt.Printf("receipt    %s\n", receipt.ReceiptID)
	fmt.Printf("eco-points +%d (total %d)\n", receipt.PointsAwarded, receipt.PointsTotal)
	return nil
}
