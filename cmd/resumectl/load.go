package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"resume-analytics/internal/extract"
	"resume-analytics/internal/scoring"
)

type engineFunc func() (*scoring.Engine, error)

type localResume struct {
	FileName string
	Parsed   extract.Parsed
}

func loadResume(ctx context.Context, path string) (localResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return localResume{}, fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	parsed, err := extract.Parse(ctx, data, name)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFileType) {
			return localResume{}, fmt.Errorf("%s: file must be PDF or DOCX", name)
		}
		return localResume{}, err
	}
	return localResume{FileName: name, Parsed: parsed}, nil
}

func (r localResume) analyze(engine *scoring.Engine, role, level string) scoring.AnalysisResult {
	extracted := engine.ExtractSkills(r.Parsed.RawText)
	return engine.Analyze(extracted, r.Parsed.RawText, r.FileName, r.Parsed.WordCount, role, level)
}

// loadText reads a job description. PDF and DOCX files go through text
// extraction; anything else is read as plain text.
func loadText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if _, err := extract.MimeFor(path); err != nil {
		return string(data), nil
	}
	return extract.ExtractTextFromBytes(ctx, data, filepath.Base(path))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func today() time.Time {
	return time.Now()
}
