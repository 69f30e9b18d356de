package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	// Languages is the tesseract -l value. Notices mix Czech and Polish,
	// with the occasional English phrase.
	Languages   string // default "ces+pol+eng"
	TessdataDir string

	PSM int // 3 = fully automatic page segmentation, no layout assumption
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Languages == "" {
		cfg.Languages = "ces+pol+eng"
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 3
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// box-drawing noise tesseract emits on ornamental borders
var reBoxNoise = regexp.MustCompile(`[|_~=]{3,}`)

// Extract runs tesseract over an image file and returns the recognized text.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("source image: %w", err)
	}

	args := []string{path, "stdout", "-l", e.cfg.Languages, "--psm", fmt.Sprintf("%d", e.cfg.PSM)}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		e.logger.Error("ocr.tesseract.failed", "path", path, "error", err, "stderr", truncate(string(errb), 2<<10))
		return "", fmt.Errorf("tesseract: %w", err)
	}

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return strings.TrimSpace(txt), nil
}
