package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/coinpack/pkg/analysis"
	"github.com/philipparndt/coinpack/pkg/mesh"
	"github.com/philipparndt/coinpack/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a written STL file",
	Long: `Show triangle count, bounding box, surface area and enclosed volume of an STL file.
For meshes written by coinpack the number of coins is derived from the triangle count.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	if result.TriangleCount%mesh.TrianglesPerCylinder == 0 {
		fmt.Printf("  Coins: %d\n", result.TriangleCount/mesh.TrianglesPerCylinder)
	}
	fmt.Printf("  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))
	fmt.Printf("  Volume: %s\n\n", analysis.FormatMeasurement(result.Volume, "cubic units"))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Size: %s\n", analysis.FormatVector(result.Dimensions))
	fmt.Printf("  Diagonal: %.6f units\n", result.Diagonal)
	fmt.Printf("  Box Fill: %.4f%%\n\n", result.BoxFill)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
