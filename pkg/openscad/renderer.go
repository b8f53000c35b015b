package openscad

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/mesh"
)

// WriteScript writes the packing as an OpenSCAD program with one
// translated cylinder per coin.
func WriteScript(w io.Writer, result *coinpack.Result) error {
	bw := bufio.NewWriter(w)
	p := result.Params

	fmt.Fprintf(bw, "// %s\n", p.Name())
	fmt.Fprintf(bw, "// %d coins in %d layers\n\n", result.CircleCount(), len(result.Layers))
	fmt.Fprintf(bw, "$fn = %d;\n", mesh.Segments)
	fmt.Fprintf(bw, "coin_radius = %g;\n", p.Coin.Radius)
	fmt.Fprintf(bw, "coin_height = %g;\n\n", p.Coin.Height)
	fmt.Fprintln(bw, "module coin() cylinder(r = coin_radius, h = coin_height);")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "union() {")

	for _, l := range result.Layers {
		if len(l.Circles) == 0 {
			continue
		}
		fmt.Fprintf(bw, "  // layer %d, z = %g\n", l.Layer.Index, l.Layer.Z)
		for _, c := range l.Circles {
			fmt.Fprintf(bw, "  translate([%g, %g, %g]) coin();\n", c.Center.X, c.Center.Y, l.Layer.Z)
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// WriteScriptFile writes the OpenSCAD program to path, replacing any
// existing file.
func WriteScriptFile(path string, result *coinpack.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteScript(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Renderer runs the openscad binary
type Renderer struct {
	workDir string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
	}
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if _, err := exec.LookPath("openscad"); err != nil {
		return fmt.Errorf("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")
	}

	cmd := exec.CommandContext(ctx, "openscad", "-o", outputFile, scadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v\n", scadFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("stderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("stdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	return nil
}
