// ratioscope: financial ratio analysis from public statement pages.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finlens/ratioscope/internal/archive"
	"github.com/finlens/ratioscope/internal/config"
	"github.com/finlens/ratioscope/internal/fetch"
	"github.com/finlens/ratioscope/internal/news"
	"github.com/finlens/ratioscope/internal/report"
	"github.com/finlens/ratioscope/internal/statement"
	"github.com/finlens/ratioscope/internal/valuation"
	"github.com/finlens/ratioscope/pkg/logger"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals shared by all commands, set in PersistentPreRunE.
var (
	cfg *config.Config
	log *logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ratioscope",
	Short: "ratioscope - financial ratio analysis for public companies",
	Long: `ratioscope builds a multi-period financial ratio report for a ticker.
It scrapes the balance sheet, income statement, and cash flow pages,
canonicalizes the line items, computes 25 ratios across liquidity,
solvency, efficiency, and profitability, and renders the result as
markdown or HTML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		log = logger.New(level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ratioscope %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Report Command ---

var reportCmd = &cobra.Command{
	Use:   "report [ticker]",
	Short: "Build the financial ratio report for a ticker",
	Long: `Fetch the three financial statements for a ticker, compute all
registered ratios per period, and write the rendered report.

Examples:
  ratioscope report AAPL
  ratioscope report MSFT --format html --out msft.html
  ratioscope report KO --news --archive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := strings.ToUpper(strings.TrimSpace(args[0]))

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = cfg.Report.Format
		}
		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("out")
		withNews, _ := cmd.Flags().GetBool("news")
		toArchive, _ := cmd.Flags().GetBool("archive")

		ctx := cmd.Context()
		client := fetch.NewClient(fetchConfig(cfg), log)

		fmt.Printf("🔍 Fetching financial statements for %s\n", ticker)
		set, err := client.Statements(ctx, ticker)
		if err != nil {
			return fmt.Errorf("fetch statements: %w", err)
		}

		rec, err := statement.Build(set, log)
		if err != nil {
			return fmt.Errorf("canonicalize statements: %w", err)
		}
		if missing := rec.MissingFields(); len(missing) > 0 {
			fmt.Printf("⚠️  %d canonical field(s) unresolved; their dependent ratios render N/A\n", len(missing))
		}

		doc := report.Assemble(rec)

		opts := report.Options{
			CostOfCapital: costOfCapital(ctx, client, rec),
		}
		if withNews {
			headlines, err := news.NewFetcher(cfg.News.FeedURL, log).Headlines(ctx, ticker, cfg.News.Limit)
			if err != nil {
				log.WithError(err).Warn("headlines unavailable, skipping")
			} else {
				opts.Headlines = headlines
			}
		}

		markdown := report.RenderMarkdown(doc, opts)
		content := markdown
		if format == report.FormatHTML {
			content, err = report.RenderHTML(doc, opts)
			if err != nil {
				return fmt.Errorf("render HTML: %w", err)
			}
		}

		if outPath == "" {
			outPath = filepath.Join(cfg.Report.OutputDir, fmt.Sprintf("report_%s.%s", ticker, format.Ext()))
		}
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("📄 Report written to %s\n", outPath)

		if toArchive {
			if cfg.Archive.DSN == "" {
				return fmt.Errorf("--archive requires archive.dsn (or RATIOSCOPE_ARCHIVE_DSN)")
			}
			store, err := archive.Open(ctx, cfg.Archive.DSN, log)
			if err != nil {
				return err
			}
			defer store.Close()
			snap := archive.Snapshot{
				ID:          uuid.New(),
				Ticker:      ticker,
				Periods:     rec.Periods(),
				Markdown:    markdown,
				GeneratedAt: time.Now().UTC(),
			}
			if err := store.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("🗄️  Report archived for %s\n", ticker)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("format", "", "report format: markdown or html (default from config)")
	reportCmd.Flags().String("out", "", "output file path (default: <output_dir>/report_<TICKER>.<ext>)")
	reportCmd.Flags().Bool("news", false, "append recent headlines to the report")
	reportCmd.Flags().Bool("archive", false, "archive the rendered report to Postgres")
}

// costOfCapital derives the WACC appendix from the quote page beta. Any
// failure just skips the appendix; the ratio tables never depend on it.
func costOfCapital(ctx context.Context, client *fetch.Client, rec *statement.Record) *valuation.Result {
	quote, err := client.Quote(ctx, rec.Ticker())
	if err != nil {
		log.WithError(err).Warn("quote page unavailable, skipping cost of capital")
		return nil
	}
	beta, ok := quote.Beta()
	if !ok {
		log.Warn("quote page carries no beta, skipping cost of capital")
		return nil
	}
	result, err := valuation.FromRecord(rec, beta, cfg.Valuation.RiskFreeRate, cfg.Valuation.MarketReturn)
	if err != nil {
		log.WithError(err).Warn("cost of capital not computable")
		return nil
	}
	return result
}

// fetchConfig maps the source config section onto the fetch client config.
func fetchConfig(cfg *config.Config) fetch.Config {
	return fetch.Config{
		BaseURL:           cfg.Source.BaseURL,
		UserAgent:         cfg.Source.UserAgent,
		Timeout:           time.Duration(cfg.Source.TimeoutSec) * time.Second,
		RequestsPerSecond: cfg.Source.RequestsPerSecond,
		CacheTTL:          time.Duration(cfg.Source.CacheTTLMin) * time.Minute,
	}
}

// --- Fields Command ---

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the canonical fields and their statement sources",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-22s %-18s %s\n", "FIELD", "STATEMENT", "SOURCE LABEL")
		for _, f := range statement.Fields() {
			stmt, label, _ := statement.SourceOf(f)
			fmt.Printf("%-22s %-18s %s\n", f, stmt, label)
		}
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  ratioscope - Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:  %s (%s)\n", version, commit)
		fmt.Println()

		fmt.Println("  Configuration:")
		fmt.Printf("    Source:        %s\n", cfg.Source.BaseURL)
		fmt.Printf("    Rate Limit:    %.1f req/s\n", cfg.Source.RequestsPerSecond)
		fmt.Printf("    Report Format: %s\n", cfg.Report.Format)
		fmt.Printf("    Output Dir:    %s\n", cfg.Report.OutputDir)
		fmt.Printf("    News Limit:    %d\n", cfg.News.Limit)
		fmt.Printf("    Risk-Free:     %.3f\n", cfg.Valuation.RiskFreeRate)
		fmt.Printf("    Market Return: %.3f\n", cfg.Valuation.MarketReturn)
		fmt.Println()

		fmt.Println("  Secrets:")
		for _, s := range config.CheckSecrets(cfg) {
			status := "❌ not set"
			if s.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", s.Source, s.Masked)
			}
			fmt.Printf("    %-15s %s\n", s.Name+":", status)
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
