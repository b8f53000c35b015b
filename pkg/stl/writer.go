package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/philipparndt/coinpack/pkg/geometry"
)

const (
	headerSize = 80
	recordSize = 50
)

// record is the on-disk layout of one binary STL facet.
type record struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

func newRecord(t geometry.Triangle) record {
	return record{
		Normal: [3]float32{t.Normal.X, t.Normal.Y, t.Normal.Z},
		V1:     [3]float32{t.V1.X, t.V1.Y, t.V1.Z},
		V2:     [3]float32{t.V2.X, t.V2.Y, t.V2.Z},
		V3:     [3]float32{t.V3.X, t.V3.Y, t.V3.Z},
	}
}

// encode writes the record into buf, which must hold recordSize bytes.
func (r record) encode(buf []byte) {
	off := 0
	for _, v := range [4][3]float32{r.Normal, r.V1, r.V2, r.V3} {
		for _, f := range v {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	binary.LittleEndian.PutUint16(buf[off:], r.Attribute)
}

func (r record) triangle() geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewVector3(r.Normal[0], r.Normal[1], r.Normal[2]),
		geometry.NewVector3(r.V1[0], r.V1[1], r.V1[2]),
		geometry.NewVector3(r.V2[0], r.V2[1], r.V2[2]),
		geometry.NewVector3(r.V3[0], r.V3[1], r.V3[2]),
	)
}

// Write encodes the model as binary STL: an 80-byte header holding the
// model name, a little-endian triangle count and one 50-byte record per
// triangle.
func Write(w io.Writer, model *Model) error {
	if uint64(len(model.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(model.Triangles))
	}

	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, model.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	buf := make([]byte, recordSize)
	for i, t := range model.Triangles {
		newRecord(t).encode(buf)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush STL data: %w", err)
	}
	return nil
}

// WriteFile writes the model to path, replacing any existing file.
func WriteFile(path string, model *Model) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, model); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
