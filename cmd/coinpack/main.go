package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/coinpack/internal/config"
	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/preview"
	"github.com/philipparndt/coinpack/pkg/stl"
	"github.com/philipparndt/coinpack/pkg/watcher"
	"github.com/philipparndt/coinpack/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputPath string
	workers    int
	watchMode  bool
	previewDir string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "coinpack [radius [height [a [b [c]]]]]",
	Short: "Pack coins into an ellipsoid and write the result as STL",
	Long: `coinpack fills an ellipsoid with layers of equal coins, packed row by row in a
hexagonal pattern, and writes every coin as a closed cylinder to a binary STL file.

Parameters default to a US quarter (radius 9.525, height 1.52) in an ellipsoid with
semi-axes 150, 300, 150. Positional arguments override a config file, which overrides
the defaults.`,
	Args:    cobra.MaximumNArgs(5),
	Version: version.GetVersion(),
	Run:     runPack,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML or YAML config file")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultOutput, "STL file to write (replaced if it exists)")
	rootCmd.Flags().IntVarP(&workers, "workers", "j", 0, "Layers processed in parallel (0 = number of CPUs)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-run whenever the config file changes")
	rootCmd.Flags().StringVar(&previewDir, "preview-dir", "", "Write a PNG preview of every layer to this directory")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig applies positional arguments and the root command's flags
// on top of the config file.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Resolve(configPath, args)
	if err != nil {
		return cfg, err
	}

	root := cmd.Root().Flags()
	if root.Changed("output") {
		cfg.Output = outputPath
	}
	if root.Changed("workers") {
		cfg.Workers = workers
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}

func runPack(cmd *cobra.Command, args []string) {
	if watchMode && configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch requires --config")
		os.Exit(1)
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := pack(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !watchMode {
			os.Exit(1)
		}
	}

	if watchMode {
		if err := watchConfig(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// pack runs the pipeline once and writes its outputs.
func pack(cfg config.Config) error {
	params := cfg.Params()

	if err := params.Ellipsoid.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if !quiet {
		fmt.Println("Configuration:")
		fmt.Printf("  Coin: radius %g, height %g\n", params.Coin.Radius, params.Coin.Height)
		fmt.Printf("  Ellipsoid: a %g, b %g, c %g\n", params.Ellipsoid.A, params.Ellipsoid.B, params.Ellipsoid.C)
		fmt.Printf("  Workers: %d\n\n", cfg.Workers)
	}

	start := time.Now()
	result, err := coinpack.Run(params, coinpack.Options{Workers: cfg.Workers})
	if err != nil {
		return err
	}

	if err := stl.WriteFile(cfg.Output, result.Model); err != nil {
		return err
	}

	if previewDir != "" {
		if err := writePreviews(previewDir, result); err != nil {
			return err
		}
	}

	if !quiet {
		s := result.Summary
		fmt.Printf("%d circles found\n", s.Circles)
		fmt.Printf("The circles fill %.4f%% of the total volume %.2f\n", s.FillPercent, s.EllipsoidVolume)
		fmt.Printf("Layers: %d (%d skipped)\n", s.Layers, s.SkippedLayers)
		fmt.Printf("Wrote %d triangles to %s in %v\n", result.Model.TriangleCount(), cfg.Output, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// writePreviews renders every layer at a common scale.
func writePreviews(dir string, result *coinpack.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	e := result.Params.Ellipsoid
	opts := preview.Options{Extent: max(e.A, e.B) * 1.05}
	for _, l := range result.Layers {
		path := filepath.Join(dir, fmt.Sprintf("layer-%04d.png", l.Layer.Index))
		if err := preview.WriteFile(path, l, opts); err != nil {
			return err
		}
	}
	return nil
}

// watchConfig re-runs the pipeline whenever the config file changes and
// blocks until interrupted.
func watchConfig(cmd *cobra.Command, args []string) error {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	err = fw.Watch([]string{configPath}, func(path string) {
		mu.Lock()
		defer mu.Unlock()

		if !quiet {
			fmt.Printf("\n%s changed, re-running\n", path)
		}
		cfg, err := resolveConfig(cmd, args)
		if err == nil {
			err = pack(cfg)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	if !quiet {
		fmt.Printf("Watching %s (Ctrl+C to stop)\n", configPath)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
