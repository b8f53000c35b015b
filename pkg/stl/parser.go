package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/coinpack/pkg/geometry"
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses an STL stream, detecting ASCII or binary format from the
// first bytes.
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	// Peek at the first few bytes to determine format
	header, err := br.Peek(5)
	if err != nil && len(header) == 0 {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	// Binary files may also start with "solid" in their header, so the
	// ASCII guess is confirmed by looking for a facet keyword.
	if strings.HasPrefix(string(header), "solid") && looksASCII(br) {
		return parseASCII(br)
	}

	return parseBinary(br)
}

func looksASCII(br *bufio.Reader) bool {
	peek, _ := br.Peek(512)
	return bytes.Contains(peek, []byte("facet")) || bytes.Contains(peek, []byte("endsolid"))
}

func parseVector(fields []string) geometry.Vector3 {
	var v [3]float32
	for i, f := range fields {
		x, _ := strconv.ParseFloat(f, 32)
		v[i] = float32(x)
	}
	return geometry.NewVector3(v[0], v[1], v[2])
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				currentNormal = parseVector(fields[2:5])
			}

		case "vertex":
			if len(fields) >= 4 {
				vertices = append(vertices, parseVector(fields[1:4]))
			}

		case "endfacet":
			if len(vertices) == 3 {
				triangle := geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				)
				model.AddTriangle(triangle)
			}
			vertices = vertices[:0] // Clear vertices
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Extract name from header (if present)
	headerStr := string(bytes.TrimRight(header, "\x00"))
	if len(headerStr) > 0 {
		model.Name = headerStr
	}

	// Read triangle count
	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	// The count comes from the file; cap the preallocation.
	model.Triangles = make([]geometry.Triangle, 0, min(triangleCount, 1<<20))

	// Read each triangle
	for i := uint32(0); i < triangleCount; i++ {
		var rec record
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(rec.triangle())
	}

	return model, nil
}
