package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jward/packscan"
	"github.com/jward/packscan/internal/config"
)

var (
	flagFormat  string
	flagVerbose bool
	flagConfig  string
	flagSerial  bool
)

// exitCode carries the scan outcome to main: 0 when flagged packages were
// found, 1 when none were. Fatal errors exit 1 via the Execute error path.
var exitCode int

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

var rootCmd = &cobra.Command{
	Use:           "packscan",
	Short:         "Detect known-compromised npm packages in a repository",
	Long:          "Packscan checks a source repository against a fixed list of compromised package@version pairs, matching manifest declarations and source-code references.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: text|json")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable per-file debug tracing")

	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scan a repository for the compromised package list",
	Long:  "Walks the repository for package.json manifests and JavaScript/TypeScript sources, classifies every target package, and prints the result. Exits 0 when any flagged package is found, 1 otherwise.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file overriding scan limits")
	scanCmd.Flags().BoolVar(&flagSerial, "serial", false, "disable per-target parallel scanning")
}

func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger := newLogger(flagVerbose)

	limits, err := config.LoadLimits(flagConfig)
	if err != nil {
		return err
	}

	engine := packscan.New(packscan.DefaultTargets(),
		packscan.WithLimits(limits),
		packscan.WithLogger(logger),
		packscan.WithParallel(!flagSerial),
	)

	result, err := engine.Scan(context.Background(), args[0])
	if err != nil {
		return err
	}

	switch flagFormat {
	case "json":
		if err := renderJSON(os.Stdout, result); err != nil {
			return err
		}
	default:
		renderText(os.Stdout, result)
	}

	fmt.Fprintf(os.Stderr, "Scanned %s in %s (%d packages checked, %d found)\n",
		result.Repository,
		time.Since(start).Round(time.Millisecond),
		result.TotalChecked,
		len(result.Found),
	)

	if len(result.Found) == 0 {
		exitCode = 1
	}
	return nil
}

// newLogger returns a stderr logger: warnings only by default, full debug
// tracing with --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
