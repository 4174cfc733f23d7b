package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the realtime feed and print notices as they come and go",
	Long: `watch polls /realtime/now once a second and logs every new
confirmation notice, and when it expires. Pair it with --session and a
second terminal submitting reports to see the lifecycle live. Ctrl-C
stops.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Println(styleMuted.Render("watching session " + api.sessionID))

	var lastSeq uint64
	noticeUp := false
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
		}

		reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		now, err := api.fetchRealtime(reqCtx)
		cancel()
		if err != nil {
			return err
		}

		stamp := time.Now().Format("15:04:05")
		switch {
		case now.Notice != "" && now.NoticeSeq != lastSeq:
			lastSeq = now.NoticeSeq
			noticeUp = true
			fmt.Printf("%s %s\n", styleMuted.Render(stamp), styleGood.Render(now.Notice))
		case now.Notice == "" && noticeUp:
			noticeUp = false
			fmt.Printf("%s %s\n", styleMuted.Render(stamp), styleMuted.Render("notice cleared"))
		}
	}
}
