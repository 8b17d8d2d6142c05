package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tsawler/docoutline"
	"github.com/tsawler/docoutline/internal/config"
)

// Flag names that are not config keys
const (
	flagConfig    = "config"
	flagJSON      = "json"
	flagBlocks    = "blocks"
	flagXLSX      = "xlsx"
	flagHTML      = "html"
	flagLogFormat = "log-format"
	flagVerbose   = "verbose"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "docoutline <input.pdf>",
		Short:         "Extract the title and heading outline of a PDF",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0])
		},
	}

	flags := cmd.Flags()
	flags.String(flagConfig, "", "config file (default .docoutline.yaml in the working or home directory)")
	flags.String(flagJSON, "output.json", "write the outline as JSON to this file (empty to skip)")
	flags.String(flagBlocks, "output.txt", "write the filtered blocks to this file (empty to skip)")
	flags.String(flagXLSX, "", "write a diagnostic workbook to this file")
	flags.String(flagHTML, "", "write an HTML table of contents to this file")
	flags.String(flagLogFormat, "console", "log format: console or json")
	flags.BoolP(flagVerbose, "v", false, "enable debug logging")

	flags.Float64("margin", 0.1, "header/footer band as a fraction of the page height")
	flags.Float64("zoom", 2, "magnification for OCR crops")
	flags.String("tables", "", "YAML or JSON file of table regions to drop")
	flags.Int("workers", 0, "pages merged concurrently (default GOMAXPROCS)")
	flags.Bool("ocr", true, "re-read the title and headings with Tesseract (--ocr=false to skip)")
	flags.String("ocr-engine", "cli", "OCR engine: cli or gosseract")
	flags.String("lang", "eng", "Tesseract language(s), e.g. eng+fra")

	bind := map[string]string{
		config.KeyMargin:      "margin",
		config.KeyZoom:        "zoom",
		config.KeyTables:      "tables",
		config.KeyWorkers:     "workers",
		config.KeyOCREnabled:  "ocr",
		config.KeyOCREngine:   "ocr-engine",
		config.KeyOCRLanguage: "lang",
	}
	for key, name := range bind {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, input string) error {
	flags := cmd.Flags()
	logFormat, _ := flags.GetString(flagLogFormat)
	verbose, _ := flags.GetBool(flagVerbose)

	logger, err := newLogger(logFormat, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	configFile, _ := flags.GetString(flagConfig)
	if err := config.ReadFile(v, configFile); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	if v.ConfigFileUsed() != "" {
		logger.Debug("config file loaded", zap.String("path", v.ConfigFileUsed()))
	}

	settings, err := config.Load(v)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	logger.Debug("settings", zap.String("resolved", settings.Describe()))

	ext := docoutline.Open(input).
		Config(settings.Analyzer).
		TablesFile(settings.Tables).
		Logger(logger)
	if settings.OCREnabled {
		ext = ext.EnableOCR(settings.OCR)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := ext.Analyze(ctx)
	if err != nil {
		if errors.Is(err, docoutline.ErrInputNotFound) {
			logger.Error("input not found", zap.String("path", input))
		} else if !errors.Is(err, context.Canceled) {
			logger.Error("extraction failed", zap.String("path", input), zap.Error(err))
		}
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, result)

	saved, err := writeOutputs(outputsFromFlags(cmd), result)
	if err != nil {
		logger.Error("failed to write output", zap.Error(err))
		return err
	}
	if len(saved) > 0 {
		fmt.Fprintf(out, "Saved output to %s\n", joinNames(saved))
	}
	return nil
}

func newLogger(format string, verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		return nil, fmt.Errorf("unknown log format %q (want console or json)", format)
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
