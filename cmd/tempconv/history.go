package main

import (
	"fmt"
	"strconv"

	"tempconv/internal/conversion"
	"tempconv/internal/history"
	"tempconv/internal/models"
	"tempconv/internal/service"

	"github.com/spf13/cobra"
)

var (
	editFrom string
	editTo   string
)

// historyCmd groups history management
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show and manage the conversion history",
	Long: `Show and manage the conversion history.

Available subcommands:
  list   - Show the history, newest first
  edit   - Recompute an entry in place
  delete - Delete one entry
  clear  - Delete every entry`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the history, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyEditCmd = &cobra.Command{
	Use:   "edit ID VALUE",
	Short: "Recompute an entry with a new value or scales",
	Long: `Replace the value of entry ID and recompute it. The entry keeps its id
and position; its time is refreshed and marked as updated. Scales default
to the entry's own.`,
	Args: cobra.ExactArgs(2),
	RunE: runHistoryEdit,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete one entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyEditCmd.Flags().StringVarP(&editFrom, "from", "f", "", "Source scale")
	historyEditCmd.Flags().StringVarP(&editTo, "to", "t", "", "Target scale")
	historyDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	historyClearCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyEditCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func parseRecordID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// findRecord looks id up in the current history view.
func findRecord(v models.HistoryView, id int64) (models.ConversionRecord, bool) {
	for _, r := range v.Rows {
		if r.Record.ID == id {
			return r.Record, true
		}
	}
	return models.ConversionRecord{}, false
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(a *app) error {
		fmt.Fprintln(cmd.OutOrStdout(), renderHistory(a.services.View()))
		return nil
	})
}

func runHistoryEdit(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	value, err := conversion.ParseInput(args[1])
	if err != nil {
		return fmt.Errorf("%s (%w)", service.MsgInvalidNumber, err)
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		rec, ok := findRecord(a.services.View(), id)
		if !ok || !a.services.Edit(id) {
			return fmt.Errorf("%w: id %d", history.ErrRecordNotFound, id)
		}
		from, to, err := resolveScales(cmd, editFrom, editTo, models.ConverterState{
			SourceScale: rec.SourceScale,
			TargetScale: rec.TargetScale,
		})
		if err != nil {
			a.services.CancelEdit()
			return err
		}
		upd, err := a.services.SaveEdit(ctx, id, service.ConvertParams{Value: value, From: from, To: to})
		if err != nil {
			a.services.CancelEdit()
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, formatConversion(conversion.Describe(upd)))
		fmt.Fprintln(out, successStyle.Render("Entry updated!"))
		return nil
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		done, err := a.services.Delete(ctx, id, confirmerFor(cmd))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !done {
			fmt.Fprintln(out, mutedStyle.Render("Cancelled."))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render("Entry deleted!"))
		return nil
	})
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		done, err := a.services.ClearAll(ctx, confirmerFor(cmd))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !done {
			fmt.Fprintln(out, mutedStyle.Render("Cancelled."))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render("All history cleared!"))
		return nil
	})
}
