package main

import (
	"os"
	_ "time/tzdata" // INSIGHT_TIMEZONE must resolve in minimal containers

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sobriety-backend",
	Short:        "Check-in, streak and milestone service for a sobriety tracker",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd(), newAnalyzeCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
