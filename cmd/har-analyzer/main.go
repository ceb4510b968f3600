package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"har-analyzer/internal/adapters/decoders/har"
	"har-analyzer/internal/domain"
	cfgpkg "har-analyzer/internal/infrastructure/config"
	obs "har-analyzer/internal/infrastructure/observability"
	"har-analyzer/internal/infrastructure/report"
	"har-analyzer/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cfgpkg.FromEnv()
	var exportPath string
	topN := cfg.SlowestN

	cmd := &cobra.Command{
		Use:   "har-analyzer <har-file>",
		Short: "Summarize request timings from an HTTP Archive capture",
		Long: "har-analyzer reads a HAR capture, breaks every request down by network\n" +
			"phase (DNS, connect, SSL, wait, receive, ...) and prints per-phase\n" +
			"statistics, the status code distribution and the slowest requests.",
		Example: "  har-analyzer mywebsite.har\n" +
			"  har-analyzer mywebsite.har --export results.json",
		Args:          cobra.ExactArgs(1),
		Version:       fmt.Sprintf("%s (commit %s)", obs.Version, obs.Commit),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation the error is already logged; usage
			// output would only bury it.
			cmd.SilenceUsage = true
			return run(cmd, cfg, args[0], exportPath, topN)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "",
		"write the structured analysis document to this path")
	cmd.Flags().IntVar(&topN, "top", cfg.SlowestN,
		"number of slowest requests to rank")
	return cmd
}

func run(cmd *cobra.Command, cfg cfgpkg.Config, harPath, exportPath string, topN int) error {
	logger := obs.NewLogger(cfg.LogLevel)

	doc, err := har.Load(harPath)
	if err != nil {
		logger.Error().Err(err).Str("file", harPath).Msg("load failed")
		return err
	}
	records, err := har.Extract(doc)
	if err != nil {
		logger.Error().Err(err).Str("file", harPath).Msg("extract failed")
		return err
	}
	logger.Debug().Int("entries", len(records)).Str("file", harPath).Msg("extracted timing records")

	session := domain.AnalysisSession{SourcePath: harPath, Records: records}
	analysis := usecase.Analyze(session, topN)

	report.WriteConsole(cmd.OutOrStdout(), analysis, !cfg.NoColor)

	if exportPath != "" {
		if err := report.ExportJSON(exportPath, analysis); err != nil {
			logger.Error().Err(err).Str("file", exportPath).Msg("export failed")
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Analysis exported to: %s\n", exportPath)
	}
	return nil
}
