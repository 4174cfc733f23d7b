package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var flagTeam string

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List the alert queue",
	Args:  cobra.NoArgs,
	RunE:  runAlerts,
}

var ackCmd = &cobra.Command{
	Use:   "ack <alert-id>",
	Short: "Acknowledge an open alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlertAction(cmd, args[0], "ack", nil)
	},
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch <alert-id>",
	Short: "Send a field team to an alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlertAction(cmd, args[0], "dispatch", map[string]string{"team": flagTeam})
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <alert-id>",
	Short: "Close out an alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlertAction(cmd, args[0], "resolve", nil)
	},
}

func init() {
	dispatchCmd.Flags().StringVar(&flagTeam, "team", "", "field team to assign, e.g. crew-7")
	_ = dispatchCmd.MarkFlagRequired("team")
}

func runAlerts(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api.fetchAlerts(ctx)
	if err != nil {
		return err
	}

	fmt.Print(renderAlerts(resp))
	return nil
}

func renderAlerts(resp alertsResponse) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Alerts") + "\n\n")

	for _, a := range resp.Data {
		team := a.Team
		if team == "" {
			team = "-"
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %-4s  %-18s  %s\n",
			a.ID,
			severityStyle(a.Severity).Render(fmt.Sprintf("%-6s", a.Severity)),
			statusStyle(a.Status).Render(fmt.Sprintf("%-12s", a.Status)),
			a.CellID,
			a.Category,
			styleMuted.Render(team),
		))
	}

	b.WriteString("\n" + styleMuted.Render(fmt.Sprintf(
		"open %d  acknowledged %d  dispatched %d  resolved %d",
		resp.Meta.ByStatus["open"],
		resp.Meta.ByStatus["acknowledged"],
		resp.Meta.ByStatus["dispatched"],
		resp.Meta.ByStatus["resolved"],
	)) + "\n")
	return b.String()
}

func runAlertAction(cmd *cobra.Command, id, verb string, in any) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api.alertAction(ctx, id, verb, in)
	if err != nil {
		return err
	}

	if !resp.Meta.Changed {
		fmt.Println(styleMuted.Render(fmt.Sprintf("%s already %s, nothing to do", resp.Data.ID, resp.Data.Status)))
		return nil
	}

	fmt.Printf("%s is now %s\n", resp.Data.ID, statusStyle(resp.Data.Status).Render(resp.Data.Status))
	if resp.Data.Team != "" {
		fmt.Printf("team       %s\n", resp.Data.Team)
	}
	return nil
}
