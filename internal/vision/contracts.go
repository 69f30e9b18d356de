package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/entity"
)

// Request carries everything an adapter needs for one provider call.
// KnownName is the name the notice was listed under on the source site; when
// non-empty the prompt anchors on it.
type Request struct {
	ImagePath string
	Mode      constants.ExtractionMode
	KnownName string
}

// TextResult is the outcome of the full text+structure task. RawBox holds the
// bounding box exactly as the provider returned it, before unit normalization.
type TextResult struct {
	Fields  entity.ExtractionResult
	RawBox  map[string]any
	RawJSON []byte
}

// PhotoResult is the outcome of the portrait-detection task.
type PhotoResult struct {
	HasPhoto bool
	RawBox   map[string]any
	RawJSON  []byte
}

// Provider is the interface the extraction pipeline depends on. Adapters make
// exactly one attempt per call; retry and fallback policy belong to the caller.
type Provider interface {
	ID() constants.ProviderID
	ExtractText(ctx context.Context, req Request) (TextResult, error)
	DetectPhoto(ctx context.Context, req Request) (PhotoResult, error)
}

// Spec identifies a provider and optional model as "provider" or
// "provider/model", e.g. "gemini" or "abacusai/gpt-4o". An empty model means
// the adapter's default.
type Spec struct {
	Provider constants.ProviderID
	Model    string
}

func ParseSpec(s string) (Spec, error) {
	name, model, _ := strings.Cut(strings.TrimSpace(s), "/")
	if name == "" {
		return Spec{}, fmt.Errorf("empty provider spec")
	}
	id, err := constants.ParseProviderID(name)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Provider: id, Model: model}, nil
}

func (s Spec) String() string {
	if s.Model == "" {
		return string(s.Provider)
	}
	return string(s.Provider) + "/" + s.Model
}
