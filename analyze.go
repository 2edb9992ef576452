package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sobriety-backend/internal/analysis"
	"sobriety-backend/internal/logging"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file      string
		nowFlag   string
		trendDays int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an exported check-in history offline",
		Long: "Reads a JSON array of check-ins ({userId, date, status, checkInTime}) and prints\n" +
			"the same analysis payload the API serves. Use --file - to read stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			cfg.Log.Stderr = true
			log, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			var data []byte
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			records, dropped, err := analysis.DecodeRecords(data)
			if err != nil {
				return err
			}
			for _, d := range dropped {
				log.Warn("skipping record", zap.Error(d))
			}

			now := time.Now().UTC()
			if nowFlag != "" {
				if now, err = analysis.ParseTimestamp(nowFlag); err != nil {
					return fmt.Errorf("--now: %w", err)
				}
			}
			if !cmd.Flags().Changed("trend-days") {
				trendDays = cfg.TrendWindowDays
			}
			loc, err := time.LoadLocation(cfg.InsightTimezone)
			if err != nil {
				return err
			}

			res := analysis.Analyze(records,
				analysis.WithNow(now),
				analysis.WithTrendDays(trendDays),
				analysis.WithLocation(loc),
			)
			log.Debug("analyzed", zap.Int("records", len(records)), zap.Int("dropped", len(dropped)))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "check-in export (JSON array), - for stdin")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference date, defaults to the current time")
	cmd.Flags().IntVar(&trendDays, "trend-days", analysis.DefaultTrendDays, "trend window in days")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
