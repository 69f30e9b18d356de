package abacus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/vision"
)

func (c *Client) ID() constants.ProviderID {
	return constants.ProviderAbacusAI
}

func requestID(ctx context.Context) string {
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		return rid
	}
	return uuid.New().String()
}

// ExtractText implements vision.Provider using a single chat/completions call
// with an inline base64 image.
func (c *Client) ExtractText(ctx context.Context, req vision.Request) (vision.TextResult, error) {
	rid := requestID(ctx)
	start := time.Now()

	c.logger.Info("abacus.extract_text.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mode", string(req.Mode),
		"image", req.ImagePath,
	)

	content, err := c.complete(ctx, req.ImagePath, vision.BuildTextPrompt(req.Mode, req.KnownName))
	if err != nil {
		c.logger.Error("abacus.extract_text.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.TextResult{}, err
	}

	fields, rawBox, rawJSON, err := vision.DecodeText(content)
	if err != nil {
		c.logger.Error("abacus.extract_text.decode_failed",
			"req_id", rid, "error", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.TextResult{}, err
	}
	if vErr := vision.ValidateJSONAgainstSchema(vision.BuildTextJSONSchema(), rawJSON); vErr != nil {
		c.logger.Warn("abacus.extract_text.schema_mismatch", "req_id", rid, "error", vErr)
	}

	c.logger.Info("abacus.extract_text.ok",
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

	c.logger.Info("abacus.detect_photo.start",
		"req_id", rid, "model", c.cfg.Model, "image", req.ImagePath)

	content, err := c.complete(ctx, req.ImagePath, vision.BuildPhotoPrompt())
	if err != nil {
		c.logger.Error("abacus.detect_photo.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.PhotoResult{}, err
	}

	hasPhoto, rawBox, rawJSON, err := vision.DecodePhoto(content)
	if err != nil {
		c.logger.Error("abacus.detect_photo.decode_failed",
			"req_id", rid, "error", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.PhotoResult{}, err
	}

	c.logger.Info("abacus.detect_photo.ok",
		"req_id", rid, "has_photo", hasPhoto,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return vision.PhotoResult{HasPhoto: hasPhoto, RawBox: rawBox, RawJSON: rawJSON}, nil
}

func (c *Client) complete(ctx context.Context, imagePath, prompt string) (string, error) {
	dataURL, _, err := vision.ReadAsDataURL(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": 0,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := vision.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode abacus response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in abacus response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty abacus response")
	}
	return content, nil
}
