// Command pipeloop reads pipe maze files and prints, for each, the distance
// to the loop's farthest tile (part 1) and the number of enclosed cells
// (part 2).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
	method     string
	workers    int
	verify     bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd solves every input file
var rootCmd = &cobra.Command{
	Use:   "pipeloop [file...]",
	Short: "Trace the loop in a pipe maze and count the tiles it encloses",
	Long: `Reads one or more pipe mazes (rows of | - L J 7 F . S) and prints, per file,
the distance from S to the farthest loop tile and the number of tiles inside
the loop.

With no file arguments the inputs listed in the config are used
(default: input.txt). Use "-" to read standard input.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSolve,
}

// verifyCmd cross-checks Pick's theorem against the scanline sweep
var verifyCmd = &cobra.Command{
	Use:   "verify [file...]",
	Short: "Count enclosed tiles with both methods and report agreement",
	RunE:  runVerify,
}

// traceCmd reports loop details
var traceCmd = &cobra.Command{
	Use:   "trace [file...]",
	Short: "Print the start connector, loop length and farthest distance",
	RunE:  runTrace,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "pipeloop.yaml", "Path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&method, "method", "pick", "Enclosed-tile method: pick or scanline")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 4, "Maximum files solved concurrently")
	rootCmd.PersistentFlags().BoolVar(&verify, "verify", false, "Cross-check both area methods")

	rootCmd.AddCommand(verifyCmd, traceCmd)
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("method") {
		c.Method = method
	}
	if flags.Changed("workers") {
		c.Workers = workers
	}
	if flags.Changed("verify") {
		c.Verify = verify
	}
	if verbose {
		c.Logging.Level = "debug"
	}
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lc.Level != "" {
		level, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
