package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/vision"
)

func requestID(ctx context.Context) string {
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		return rid
	}
	return uuid.New().String()
}

// ExtractText implements vision.Provider for the full text+structure task.
// One attempt per call; the pipeline owns retry and fallback policy.
func (c *Client) ExtractText(ctx context.Context, req vision.Request) (vision.TextResult, error) {
	rid := requestID(ctx)
	start := time.Now()

	c.logger.Info("gemini.extract_text.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mode", string(req.Mode),
		"image", req.ImagePath,
	)

	content, err := c.generate(ctx, req.ImagePath, vision.BuildTextPrompt(req.Mode, req.KnownName))
	if err != nil {
		c.logger.Error("gemini.extract_text.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.TextResult{}, err
	}

	fields, rawBox, rawJSON, err := vision.DecodeText(content)
	if err != nil {
		c.logger.Error("gemini.extract_text.decode_failed",
			"req_id", rid, "error", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.TextResult{}, err
	}
	if vErr := vision.ValidateJSONAgainstSchema(vision.BuildTextJSONSchema(), rawJSON); vErr != nil {
		c.logger.Warn("gemini.extract_text.schema_mismatch", "req_id", rid, "error", vErr)
	}

	c.logger.Info("gemini.extract_text.ok",
		"req_id", rid,
		"name", fields.FullName,
		"death_date", fields.DeathDate,
		"has_photo", fields.HasPhoto,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return vision.TextResult{Fields: fields, RawBox: rawBox, RawJSON: rawJSON}, nil
}

// DetectPhoto implements vision.Provider for the portrait detection task.
func (c *Client) DetectPhoto(ctx context.Context, req vision.Request) (vision.PhotoResult, error) {
	rid := requestID(ctx)
	start := time.Now()

	c.logger.Info("gemini.detect_photo.start",
		"req_id", rid, "model", c.cfg.Model, "image", req.ImagePath)

	content, err := c.generate(ctx, req.ImagePath, vision.BuildPhotoPrompt())
	if err != nil {
		c.logger.Error("gemini.detect_photo.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.PhotoResult{}, err
	}

	hasPhoto, rawBox, rawJSON, err := vision.DecodePhoto(content)
	if err != nil {
		c.logger.Error("gemini.detect_photo.decode_failed",
			"req_id", rid, "error", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.PhotoResult{}, err
	}

	c.logger.Info("gemini.detect_photo.ok",
		"req_id", rid, "has_photo", hasPhoto,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return vision.PhotoResult{HasPhoto: hasPhoto, RawBox: rawBox, RawJSON: rawJSON}, nil
}

func (c *Client) ID() constants.ProviderID {
	return constants.ProviderGemini
}

func (c *Client) generate(ctx context.Context, imagePath, prompt string) (string, error) {
	img, mimeType, err := vision.ReadImage(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	model := c.genai.GenerativeModel(c.cfg.Model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: img},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content = string(text)
			break
		}
	}
	if content == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return content, nil
}
