package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/preview"
	"github.com/spf13/cobra"
)

var (
	previewLayer  int
	previewOutput string
	previewSize   int
)

var previewCmd = &cobra.Command{
	Use:   "preview [radius [height [a [b [c]]]]]",
	Short: "Render one packed layer as PNG",
	Long:  "Pack the ellipsoid and draw the cross-section of a single layer with its coins, seen from above.",
	Args:  cobra.MaximumNArgs(5),
	Run:   runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&previewLayer, "layer", "l", 0, "Index of the layer to render")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "layer.png", "PNG file to write")
	previewCmd.Flags().IntVarP(&previewSize, "size", "s", preview.DefaultSize, "Image width and height in pixels")
}

func runPreview(cmd *cobra.Command, args []string) {
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

	layer, err := result.Layer(previewLayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := preview.WriteFile(previewOutput, layer, preview.Options{Size: previewSize}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Layer %d at z=%.3f: %d coins, written to %s\n", layer.Layer.Index, layer.Layer.Z, len(layer.Circles), previewOutput)
}
