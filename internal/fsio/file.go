package fsio

import "os"

// ReadLines reads the file at path and splits it into terminator-preserving
// lines.
func ReadLines(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// WriteLines writes lines back to the file at path. The 0644 mode only
// applies if the file has to be created; an existing file keeps its
// permissions, so a rewrite is a pure content replacement.
func WriteLines(path string, lines []Line) error {
	return os.WriteFile(path, JoinLines(lines), 0o644)
}
