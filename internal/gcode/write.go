package gcode

import (
	"bufio"
	"io"
	"os"

	"github.com/mmr-tortoise/strata/internal/model"
)

// WriteTo streams the program to w, one newline-terminated line per
// command. It implements io.WriterTo.
func (p Program) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, cmd := range p {
		n, err := io.WriteString(w, cmd.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFile writes the program to path. The file is created immediately
// before writing and released on every exit path; failures to create,
// write, flush, or close are all reported as *model.IoError.
func WriteFile(path string, p Program) error {
	f, err := os.Create(path)
	if err != nil {
		return &model.IoError{Op: "write", Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	if _, err := p.WriteTo(w); err != nil {
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
