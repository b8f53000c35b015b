package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/openscad"
	"github.com/spf13/cobra"
)

var (
	scadOutput string
	scadRender string
)

var scadCmd = &cobra.Command{
	Use:   "scad [radius [height [a [b [c]]]]]",
	Short: "Export the packing as an OpenSCAD program",
	Long: `Write one translated cylinder per coin as an OpenSCAD program. With --render the
program is also rendered to STL by the openscad binary, which must be on PATH.`,
	Args: cobra.MaximumNArgs(5),
	Run:  runScad,
}

func init() {
	rootCmd.AddCommand(scadCmd)

	scadCmd.Flags().StringVarP(&scadOutput, "output", "o", "coins.scad", "OpenSCAD file to write")
	scadCmd.Flags().StringVar(&scadRender, "render", "", "Also render the program to this STL file with openscad")
}

func runScad(cmd *cobra.Command, args []string) {
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

	if err := openscad.WriteScriptFile(scadOutput, result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d coins to %s\n", result.CircleCount(), scadOutput)

	if scadRender == "" {
		return
	}

	scadPath, err := filepath.Abs(scadOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s with openscad...\n", scadOutput)
	if err := openscad.NewRenderer(wd).RenderToSTL(cmd.Context(), scadPath, scadRender); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %s\n", scadRender)
}
