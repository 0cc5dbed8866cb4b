package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/ordfreq/internal/logging"
	"github.com/cognicore/ordfreq/internal/progress"
	"github.com/cognicore/ordfreq/pkg/ordfreq"
	"github.com/cognicore/ordfreq/pkg/ordfreq/config"
	"github.com/cognicore/ordfreq/pkg/ordfreq/ingest"
	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/report"
)

const usageLine = "ordfreq [flags] <document>"

type options struct {
	configPath   string
	top          int
	cutoff       float64
	format       string
	cacheBackend string
	cachePath    string
	rebuildCache bool
	quiet        bool
	logLevel     string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           usageLine,
		Short:         "Report the most frequent words of a document",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: %s", internalerr.ErrUsage, usageLine)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return analyze(cmd, cfg, opts, args[0], stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (YAML or TOML)")
	flags.IntVarP(&opts.top, "top", "n", 10, "Number of words to report")
	flags.Float64Var(&opts.cutoff, "cutoff", 0.6, "Similarity cutoff in [0, 1]")
	flags.StringVarP(&opts.format, "format", "f", config.FormatTable, "Output format: table, json or plain")
	flags.StringVar(&opts.cacheBackend, "cache-backend", config.BackendFile, "Blacklist cache: file, sqlite, bbolt or none")
	flags.StringVar(&opts.cachePath, "cache-path", "", "Blacklist cache location")
	flags.BoolVar(&opts.rebuildCache, "rebuild-cache", false, "Rebuild the blacklist from its sources")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not report progress")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	return rootCmd
}

// loadConfig reads the configuration file, if any, and applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if path := strings.TrimSpace(opts.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Top = opts.top
	}
	if flags.Changed("cutoff") {
		cfg.Matching.Cutoff = opts.cutoff
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(opts.format)
	}
	if flags.Changed("cache-backend") {
		cfg.Cache.Backend = strings.ToLower(opts.cacheBackend)
	}
	if flags.Changed("cache-path") {
		cfg.Cache.Path = opts.cachePath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(opts.logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func analyze(cmd *cobra.Command, cfg config.Config, opts options, path string, stdout, stderr io.Writer) error {
	ctx := cmd.Context()

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	doc, err := ingest.ReadDocument(path)
	if err != nil {
		return err
	}
	logger.Info("document read", "path", doc.Path, "bytes", len(doc.Text), "html", doc.HTML, "duration", time.Since(start))

	start = time.Now()
	blacklist, status, err := ordfreq.LoadBlacklist(ctx, cfg, opts.rebuildCache, logger)
	if err != nil {
		return err
	}
	logger.Info("blacklist ready", "terms", blacklist.Len(), "status", status, "duration", time.Since(start))

	matcher, err := cfg.Matcher()
	if err != nil {
		return err
	}
	tracker := progress.New(progress.Options{
		Output:      stderr,
		Description: "filtering",
		Quiet:       opts.quiet,
	})
	engine, err := ordfreq.New(ordfreq.Options{
		Blacklist: blacklist,
		Matcher:   matcher,
		MemoSize:  cfg.Filter.MemoSize,
		Logger:    logger,
		Progress:  tracker.Update,
	})
	if err != nil {
		return err
	}

	res, err := engine.Analyze(ctx, doc.Text, cfg.Top)
	tracker.Finish()
	if err != nil {
		return err
	}

	r := report.New().Build(doc.Path, cfg.Top, status.String(), res)
	logger.Debug("report built", slog.String("id", r.ID), slog.Int("entries", len(r.Entries)))
	return report.Render(stdout, r, cfg.Output.Format)
}
