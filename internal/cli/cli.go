// Package cli implements the command-line interface for searchbench.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eunmann/searchbench/internal/logctx"
	"github.com/eunmann/searchbench/pkg/bench"
	"github.com/eunmann/searchbench/pkg/humanfmt"
	"github.com/eunmann/searchbench/pkg/logging"
	"github.com/eunmann/searchbench/pkg/results"
	"github.com/eunmann/searchbench/pkg/sysmem"
)

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

type runFlags struct {
	out          string
	parquetOut   string
	s3Out        string
	configPath   string
	sizes        []int
	seed         int64
	bucketFactor float64
	progress     bool
	debug        bool
	pretty       bool
}

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// NewRootCmd builds the searchbench command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "searchbench",
		Short:         "Benchmark search structures over a synthetic passenger dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark and export the result table",
		Long: `Run generates passenger datasets of increasing size, bulk-loads a linear
scan, an unbalanced BST, a red-black tree, a chained hash table, an ordered
multi-map and a minimal-perfect-hash index, times one guaranteed-hit lookup
against each, and writes one CSV row per dataset size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.out, "out", "search_times.csv", "output CSV path")
	fs.StringVar(&flags.parquetOut, "parquet", "", "also write results as Parquet to this path")
	fs.StringVar(&flags.s3Out, "s3-out", "", "upload the CSV to this s3://bucket/key URL")
	fs.StringVar(&flags.configPath, "config", "", "YAML config file")
	fs.IntSliceVar(&flags.sizes, "sizes", nil, "dataset sizes (overrides config)")
	fs.Int64Var(&flags.seed, "seed", 0, "dataset generator seed (0 = default)")
	fs.Float64Var(&flags.bucketFactor, "bucket-factor", 0, "hash buckets per record (0 = default)")
	fs.BoolVar(&flags.progress, "progress", false, "render a progress bar over dataset sizes")
	fs.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&flags.pretty, "pretty", false, "human-friendly console logging")
	return cmd
}

func runBenchmark(cmd *cobra.Command, flags *runFlags) error {
	logging.Init(flags.debug, flags.pretty)
	log := logging.L()

	cfg, err := buildConfig(flags)
	if err != nil {
		return err
	}

	mem := sysmem.Total()
	log.Info().
		Ints("sizes", cfg.Sizes).
		Int64("seed", cfg.Seed).
		Float64("bucket_factor", cfg.BucketFactor).
		Uint64("sys_mem_total", mem.TotalBytes).
		Bool("sys_mem_reliable", mem.Reliable).
		Msg("starting benchmark")

	ctx := logctx.WithLogger(cmd.Context(), *log)
	start := time.Now()
	rows, err := bench.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}
	log.Info().
		Str("elapsed", humanfmt.Duration(time.Since(start))).
		Int("rows", len(rows)).
		Msg("benchmark complete")

	if err := results.WriteCSVFile(flags.out, rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Info().Str("path", flags.out).Msg("results written")

	if flags.parquetOut != "" {
		if err := results.WriteParquetFile(flags.parquetOut, rows); err != nil {
			return fmt.Errorf("write parquet: %w", err)
		}
		log.Info().Str("path", flags.parquetOut).Msg("parquet results written")
	}

	if flags.s3Out != "" {
		bucket, key, err := results.ParseS3URL(flags.s3Out)
		if err != nil {
			return err
		}
		uploader, err := results.NewUploader(ctx)
		if err != nil {
			return err
		}
		if err := uploader.UploadFile(ctx, flags.out, bucket, key); err != nil {
			return fmt.Errorf("upload results: %w", err)
		}
		log.Info().Str("url", flags.s3Out).Msg("results uploaded")
	}
	return nil
}

// buildConfig resolves the run configuration: defaults, then the config
// file, then explicit flags.
func buildConfig(flags *runFlags) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := bench.LoadConfig(flags.configPath)
		if err != nil {
			return bench.Config{}, err
		}
		cfg = loaded
	}
	if len(flags.sizes) > 0 {
		cfg.Sizes = flags.sizes
	}
	if flags.seed != 0 {
		cfg.Seed = flags.seed
	}
	if flags.bucketFactor != 0 {
		cfg.BucketFactor = flags.bucketFactor
	}
	if flags.progress {
		cfg.Progress = true
	}
	if err := cfg.Validate(); err != nil {
		return bench.Config{}, err
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the searchbench version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "searchbench", Version)
		},
	}
}
