package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Print writes the text report to the given writer.
func Print(w io.Writer, r Report) error {
	_, err := fmt.Fprintln(w, r.Text())
	return err
}

// WriteText saves the text report to a file.
func WriteText(path string, r Report) error {
	if err := os.WriteFile(path, []byte(r.Text()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteSummary saves the summary records as pretty-printed JSON.
func WriteSummary(path string, r Report) error {
	data, err := json.MarshalIndent(r.Summaries(), "", "    ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
