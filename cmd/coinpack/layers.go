package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/version"
	"github.com/spf13/cobra"
)

var layersJSON bool

// layerReport is the JSON form of a packing run
type layerReport struct {
	Version     string      `json:"version"`
	Radius      float32     `json:"radius"`
	Height      float32     `json:"height"`
	A           float32     `json:"a"`
	B           float32     `json:"b"`
	C           float32     `json:"c"`
	Coins       int         `json:"coins"`
	FillPercent float64     `json:"fillPercent"`
	Layers      []layerData `json:"layers"`
}

type layerData struct {
	Index    int          `json:"index"`
	Z        float32      `json:"z"`
	A        float32      `json:"a"`
	B        float32      `json:"b"`
	Coverage float32      `json:"coverage"`
	Skipped  bool         `json:"skipped,omitempty"`
	Coins    [][2]float32 `json:"coins"`
}

var layersCmd = &cobra.Command{
	Use:   "layers [radius [height [a [b [c]]]]]",
	Short: "List the layers of a packing run",
	Long:  "Slice and pack the ellipsoid without writing a mesh, then print one row per layer.",
	Args:  cobra.MaximumNArgs(5),
	Run:   runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)

	layersCmd.Flags().BoolVar(&layersJSON, "json", false, "Print every layer with its coin centers as JSON")
}

func runLayers(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := coinpack.Run(cfg.Params(), coinpack.Options{Workers: cfg.Workers, SkipMesh: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if layersJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newLayerReport(result)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Layer\tZ\ta'\tb'\tCoins\tCoverage\t")
	for _, l := range result.Layers {
		coins := fmt.Sprintf("%d", len(l.Circles))
		if l.Skipped {
			coins = "skipped"
		}
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%s\t%.2f%%\t\n", l.Layer.Index, l.Layer.Z, l.Layer.A, l.Layer.B, coins, l.Coverage()*100)
	}
	w.Flush()

	fmt.Printf("\n%d layers, %d coins\n", result.Summary.Layers, result.CircleCount())
}

func newLayerReport(result *coinpack.Result) layerReport {
	p := result.Params
	report := layerReport{
		Version:     version.GetVersion(),
		Radius:      p.Coin.Radius,
		Height:      p.Coin.Height,
		A:           p.Ellipsoid.A,
		B:           p.Ellipsoid.B,
		C:           p.Ellipsoid.C,
		Coins:       result.CircleCount(),
		FillPercent: result.Summary.FillPercent,
		Layers:      make([]layerData, 0, len(result.Layers)),
	}

	for _, l := range result.Layers {
		data := layerData{
			Index:    l.Layer.Index,
			Z:        l.Layer.Z,
			A:        l.Layer.A,
			B:        l.Layer.B,
			Coverage: l.Coverage(),
			Skipped:  l.Skipped,
			Coins:    make([][2]float32, 0, len(l.Circles)),
		}
		for _, c := range l.Circles {
			data.Coins = append(data.Coins, [2]float32{c.Center.X, c.Center.Y})
		}
		report.Layers = append(report.Layers, data)
	}
	return report
}
