package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// writeOutput renders into memory first so a failed render never leaves a
// partial file behind.
func writeOutput(stdout io.Writer, path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if path == "" {
		buf.WriteString("\n")
		_, err := buf.WriteTo(stdout)
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
