package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/kargakis/ecbreak/pkg/codec"
)

const (
	OsType  = "os"
	MemType = "mem"
)

var supportedTypes = []string{OsType, MemType}

func GetFs(fs string) (afero.Fs, error) {
	switch fs {
	case OsType:
		return afero.NewOsFs(), nil
	case MemType:
		return afero.NewMemMapFs(), nil
	}
	return nil, fmt.Errorf("unknown filesystem type provided: %s (supported types: %v)", fs, supportedTypes)
}

// ReadFile returns the raw contents of path.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return data, nil
}

// ReadBase64File reads a base64 file, ignoring line breaks and any other
// bytes outside the alphabet.
func ReadBase64File(fs afero.Fs, path string) ([]byte, error) {
	data, err := ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return codec.DecodeBase64Filter(data), nil
}

// ReadBase16Lines reads a file holding one hex-encoded buffer per line.
// Blank lines are skipped.
func ReadBase16Lines(fs afero.Fs, path string) ([][]byte, error) {
	data, err := ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var lines [][]byte
	for i, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		buf, err := codec.DecodeBase16(line)
		if err != nil {
			return nil, fmt.Errorf("cannot decode line %d of %s: %w", i+1, path, err)
		}
		lines = append(lines, buf)
	}
	return lines, nil
}

// WriteFile writes data to path, base64 encoded and wrapped at 60 columns
// when b64 is set.
func WriteFile(fs afero.Fs, path string, data []byte, b64 bool) error {
	if b64 {
		data = wrap(codec.EncodeBase64(data), 60)
	}
	if err := afero.WriteFile(fs, path, data, os.FileMode(0644)); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

func wrap(data []byte, width int) []byte {
	out := make([]byte, 0, len(data)+len(data)/width+1)
	for len(data) > width {
		out = append(out, data[:width]...)
		out = append(out, '\n')
		data = data[width:]
	}
	out = append(out, data...)
	return append(out, '\n')
}
