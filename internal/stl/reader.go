package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mmr-tortoise/strata/internal/model"
)

const (
	// binaryHeaderSize is the fixed STL binary header length in bytes.
	binaryHeaderSize = 80

	// binaryRecordSize is the size of one binary facet record:
	// 4 floats (normal) + 9 floats (vertices) at 4 bytes each, plus a
	// 2-byte attribute count.
	binaryRecordSize = 50
)

// ReadFile loads an STL file into a Mesh. Open and read failures are
// reported as *model.IoError; malformed file contents surface as plain
// parse errors.
func ReadFile(path string) (*model.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.IoError{Op: "read", Path: path, Err: err}
	}
	mesh, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if mesh.Name == "" {
		mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return mesh, nil
}

// Read parses STL data from r, auto-detecting binary vs ASCII.
func Read(r io.Reader) (*model.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if isBinary(data) {
		return decodeBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return decodeASCII(data)
	}
	return nil, fmt.Errorf("not an STL file: no binary record count match and no ascii solid header")
}

// isBinary reports whether data is a binary STL file, judged by the
// declared facet count matching the file size exactly. This check runs
// before the "solid" prefix check because binary headers may legally
// start with that text.
func isBinary(data []byte) bool {
	if len(data) < binaryHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return len(data) == binaryHeaderSize+4+int(count)*binaryRecordSize
}

// decodeBinary parses the 50-byte-record binary format. The per-facet
// normal is ignored; normals are derivable from the vertex winding.
func decodeBinary(data []byte) (*model.Mesh, error) {
	name := strings.TrimRight(string(data[:binaryHeaderSize]), " \x00")
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])

	triangles := make([]model.Triangle, 0, count)
	rec := data[binaryHeaderSize+4:]
	for i := 0; i < int(count); i++ {
		var tri model.Triangle
		for v := 0; v < 3; v++ {
			// Offset 12 skips the normal vector at the record start.
			base := i*binaryRecordSize + 12 + v*12
			tri[v] = mgl64.Vec3{
				float64(float32FromBytes(rec[base:])),
				float64(float32FromBytes(rec[base+4:])),
				float64(float32FromBytes(rec[base+8:])),
			}
		}
		triangles = append(triangles, tri)
	}
	return model.NewMesh(name, triangles), nil
}

// decodeASCII parses the "solid ... facet ... vertex" grammar. The
// parser is line-oriented and lenient: it collects every "vertex" line
// in order and groups them in threes, so minor formatting variations
// (extra whitespace, missing normals) are tolerated.
func decodeASCII(data []byte) (*model.Mesh, error) {
	var (
		name      string
		triangles []model.Triangle
		current   []mgl64.Vec3
		lineNo    int
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 && name == "" {
				name = fields[1]
			}
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", lineNo, fields[i+1], err)
				}
				coords[i] = v
			}
			current = append(current, mgl64.Vec3{coords[0], coords[1], coords[2]})
			if len(current) == 3 {
				triangles = append(triangles, model.Triangle{current[0], current[1], current[2]})
				current = current[:0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) != 0 {
		return nil, fmt.Errorf("truncated facet: %d trailing vertices", len(current))
	}
	return model.NewMesh(name, triangles), nil
}

// float32FromBytes decodes a little-endian float32 from the first four
// bytes of b.
func float32FromBytes(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
