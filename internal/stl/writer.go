package stl

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/mmr-tortoise/strata/internal/model"
)

// Write encodes the mesh as binary STL: an 80-byte header carrying the
// mesh name, a uint32 facet count, then one 50-byte record per triangle
// with a computed unit face normal.
func Write(w io.Writer, mesh *model.Mesh) error {
	var header [binaryHeaderSize]byte
	copy(header[:], mesh.Name)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(mesh.TriangleCount())); err != nil {
		return err
	}

	var rec [binaryRecordSize]byte
	for _, tri := range mesh.Triangles {
		n := tri.Normal()
		if length := n.Len(); length > 0 {
			n = n.Mul(1 / length)
		}
		putFloat32(rec[0:], n.X())
		putFloat32(rec[4:], n.Y())
		putFloat32(rec[8:], n.Z())
		for v := 0; v < 3; v++ {
			base := 12 + v*12
			putFloat32(rec[base:], tri[v].X())
			putFloat32(rec[base+4:], tri[v].Y())
			putFloat32(rec[base+8:], tri[v].Z())
		}
		// Trailing attribute byte count stays zero.
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the mesh to path as binary STL, wrapping any failure
// in *model.IoError. The file is closed on every exit path.
func WriteFile(path string, mesh *model.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return &model.IoError{Op: "write", Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	if err := Write(w, mesh); err != nil {
		_ = f.Close()
		return &model.IoError{Op: "write", Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return &model.IoError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &model.IoError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// putFloat32 stores v as a little-endian float32 in the first four
// bytes of b.
func putFloat32(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
}
