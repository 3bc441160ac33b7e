package main

import (
	"fmt"

	"tempconv/internal/conversion"
	"tempconv/internal/models"
	"tempconv/internal/service"

	"github.com/spf13/cobra"
)

var (
	convertFrom string
	convertTo   string
)

// convertCmd converts one value and records it in the history
var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Convert a temperature",
	Long: `Convert VALUE and record the conversion in the history.

Without --from/--to the last used scales are kept (Celsius to Fahrenheit
on first use). Scales accept full names or c, f, k, r.`,
	Example: `  tempconv convert 36.6 --from c --to f
  tempconv convert --from f --to c -- -40`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// swapCmd swaps source and target scales
var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap source and target scales",
	Long: `Swap the source and target scales. When a previous result exists it
becomes the new input and is converted again.`,
	Args: cobra.NoArgs,
	RunE: runSwap,
}

// scalesCmd lists supported scales
var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List supported temperature scales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, s := range models.Scales {
			fmt.Fprintf(out, "%-11s %s\n", s, conversion.SymbolOf(s))
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "", "Source scale")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "Target scale")
}

// resolveScales picks scales from flags, falling back to fallback for
// flags the user did not set.
func resolveScales(cmd *cobra.Command, from, to string, fallback models.ConverterState) (models.Scale, models.Scale, error) {
	src, dst := fallback.SourceScale, fallback.TargetScale
	var err error
	if cmd.Flags().Changed("from") {
		if src, err = models.ParseScale(from); err != nil {
			return "", "", err
		}
	}
	if cmd.Flags().Changed("to") {
		if dst, err = models.ParseScale(to); err != nil {
			return "", "", err
		}
	}
	return src, dst, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := conversion.ParseInput(args[0])
	if err != nil {
		return fmt.Errorf("%s (%w)", service.MsgInvalidNumber, err)
	}
	ctx := cmd.Context()

	return withApp(ctx, func(a *app) error {
		st, err := a.services.State(ctx)
		if err != nil {
			return err
		}
		from, to, err := resolveScales(cmd, convertFrom, convertTo, st)
		if err != nil {
			return err
		}
		view, err := a.services.Convert(ctx, service.ConvertParams{Value: value, From: from, To: to})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderConversion(view))
		return nil
	})
}

func runSwap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		res, err := a.services.Swap(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s → %s\n", res.State.SourceScale, res.State.TargetScale)
		if res.Conversion != nil {
			fmt.Fprintln(out, renderConversion(*res.Conversion))
		}
		return nil
	})
}
