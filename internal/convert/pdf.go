package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ToPDF produces the canonical PDF for a downloaded notice at destPath.
// Images are wrapped into a single-page PDF; files that already are PDFs are
// copied through unchanged. On any failure destPath is removed.
func (c *Converter) ToPDF(ctx context.Context, srcPath, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	var err error
	if IsPDF(srcPath) {
		err = copyFile(srcPath, destPath)
	} else {
		err = api.ImportImagesFile([]string{srcPath}, destPath, nil, nil)
	}
	if err != nil {
		_ = os.Remove(destPath)
		c.logger.Error("convert.to_pdf.failed", "src", srcPath, "dest", destPath, "error", err)
		return fmt.Errorf("convert to pdf: %w", err)
	}

	c.logger.Info("convert.to_pdf.ok", "src", srcPath, "dest", destPath)
	return ctx.Err()
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
