// cmd/citytool/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "citytool",
		Short: "Inspect city configs and replay scripted build sessions",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(debug || os.Getenv("CITY_DEBUG") == "1")
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(replayCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-path]",
		Short: "Validate a city config and list its building types",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(os.Stdout, args[0])
		},
	}
}

func replayCmd() *cobra.Command {
	var pngPath string

	cmd := &cobra.Command{
		Use:   "replay [config-path] [script-path]",
		Short: "Run a scripted build session and print the resulting city",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReplay(os.Stdout, args[0], args[1], pngPath)
		},
	}

	cmd.Flags().StringVar(&pngPath, "png", "", "write a top-down snapshot of the final city")
	return cmd
}
