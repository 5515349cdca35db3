package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up under the target root when
// --config is not given.
const DefaultFileName = ".copymedic.yml"

// File mirrors the keys of the optional YAML config file. Zero values mean
// "not set": absent keys never override flag values or built-in defaults,
// and the exclusion lists extend the built-in sets the same way flags do.
type File struct {
	Holder          string   `yaml:"holder"`
	Year            int      `yaml:"year"`
	Rules           string   `yaml:"rules"`
	ExcludeDirs     []string `yaml:"exclude_dirs"`
	ExcludeFiles    []string `yaml:"exclude_files"`
	IgnoreAnomalies []string `yaml:"ignore_anomalies"`
}

// LoadFile reads and parses the config file at path. A missing file is not
// an error: it yields (nil, nil) so the default lookup can fail soft. A
// file that exists but does not parse, or that carries unknown keys, is an
// error.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: nothing set.
			return &File{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}
