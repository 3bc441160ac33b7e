// Command tempconv converts temperatures between Celsius, Fahrenheit,
// Kelvin and Rankine, keeps a persistent conversion history and serves
// both over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	assumeYes  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tempconv",
	Short: "Temperature converter with history",
	Long: `tempconv converts temperatures between Celsius, Fahrenheit, Kelvin and
Rankine. Every conversion is kept in a history that can be edited, deleted
or cleared, and the same history is served over HTTP by 'tempconv serve'.

Negative values must follow '--', e.g. tempconv convert --from c --to f -- -40`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: configs/config.yml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(usersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
