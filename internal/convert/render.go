package convert

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	_ "image/gif"
	_ "image/png"

	"github.com/gen2brain/go-fitz"
)

// RenderJPEG rasterizes the first page of a PDF into a JPEG at destPath.
// Notices are single-page documents; extra pages are ignored.
func (c *Converter) RenderJPEG(ctx context.Context, pdfPath, destPath string) error {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			c.logger.Warn("convert.render.close_error", "pdf", pdfPath, "error", cerr)
		}
	}()

	if doc.NumPage() == 0 {
		return fmt.Errorf("pdf has no pages: %s", pdfPath)
	}

	img, err := doc.ImageDPI(0, c.cfg.RenderDPI)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: c.cfg.JPEGQuality}); err != nil {
		_ = out.Close()
		_ = os.Remove(destPath)
		return fmt.Errorf("encode jpeg: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(destPath)
		return err
	}

	c.logger.Info("convert.render.ok", "pdf", pdfPath, "dest", destPath, "dpi", c.cfg.RenderDPI)
	return ctx.Err()
}

// ImageDimensions returns the pixel width and height of an image file without
// decoding the full image. Needed to interpret provider bounding boxes.
func ImageDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
