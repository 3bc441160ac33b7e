package main

import (
	"fmt"
	"strings"
	"time"

	"tempconv/internal/service"

	"github.com/spf13/cobra"
)

var (
	logsType  string
	logsFrom  string
	logsTo    string
	logsLimit int
)

// logsCmd prints the history audit log
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the history audit log",
	Long: `Show ADD, UPDATE, DELETE and CLEAR events recorded for the history.

--from and --to accept RFC3339 or YYYY-MM-DD; a date-only --to covers the
whole day.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsType, "type", "", "Event type (ADD, UPDATE, DELETE, CLEAR)")
	logsCmd.Flags().StringVar(&logsFrom, "from", "", "Start of range")
	logsCmd.Flags().StringVar(&logsTo, "to", "", "End of range")
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 0, "Show only the newest N events")
}

// parseLogTime accepts RFC3339 or a date; dateOnly reports the latter.
func parseLogTime(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	if t, err = time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", s)
}

func buildLogFilter(typ, from, to string, limit int) (service.LogFilter, error) {
	f := service.LogFilter{Type: strings.TrimSpace(typ), Limit: limit}
	if from != "" {
		t, _, err := parseLogTime(from)
		if err != nil {
			return service.LogFilter{}, err
		}
		f.From = t
	}
	if to != "" {
		t, dateOnly, err := parseLogTime(to)
		if err != nil {
			return service.LogFilter{}, err
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = t
	}
	return f, nil
}

func runLogs(cmd *cobra.Command, args []string) error {
	f, err := buildLogFilter(logsType, logsFrom, logsTo, logsLimit)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		events, err := a.services.List(ctx, f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderEvents(events))
		return nil
	})
}
