package portmantout

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	uuid "github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
)

// ReadLines reads newline-delimited (0x0A) raw byte records from r. It
// does not validate UTF-8 and, unlike bufio.Scanner, has no bound on
// line length: arbitrary-length records are read via ReadBytes. Blank
// lines are dropped, since an empty record is never a legal word,
// particle, or joiner.
func ReadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		line = bytes.TrimSuffix(line, []byte{'\n'})
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading lines")
		}
	}
}

// ReadLinesFile opens path and reads it with ReadLines.
func ReadLinesFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoFailure, err)
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoFailure, path, err)
	}
	return lines, nil
}

// ReadAllFile reads an entire file's raw bytes (used for a rendered
// portmantout being resumed or verified).
func ReadAllFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoFailure, path, err)
	}
	return data, nil
}

// AtomicWriteFile writes data to dir/name via a uniquely-named temp
// file followed by os.Rename, so a process killed mid-write never
// leaves a truncated destination file in place.
func AtomicWriteFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIoFailure, dir, err)
	}

	token, err := uuid.GenerateUUID()
	if err != nil {
		return fmt.Errorf("%w: generating temp name: %v", ErrIoFailure, err)
	}
	tmpPath := filepath.Join(dir, name+"."+token+".tmp")

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIoFailure, tmpPath, err)
	}

	destPath := filepath.Join(dir, name)
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming into %s: %v", ErrIoFailure, destPath, err)
	}
	return nil
}
