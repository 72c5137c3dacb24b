package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func (w *implWriter) Write(ctx context.Context, res *Result) ([]string, error) {
	if res.Name == "" {
		return nil, fmt.Errorf("report: result has no name")
	}
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	jsonPath := filepath.Join(w.outputDir, res.Name+".json")
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", jsonPath, err)
	}
	written := []string{jsonPath}

	if w.docx {
		docxPath := filepath.Join(w.outputDir, res.Name+".docx")
		if err := resultToDocx(res, docxPath); err != nil {
			// JSON is the primary artifact
			w.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		} else {
			written = append(written, docxPath)
		}
	}

	w.logger.Info(ctx, "Report written: %s", jsonPath)
	return written, nil
}
