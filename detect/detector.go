// Package detect scores text for emotional content. It prefers the
// Watson NLP EmotionPredict service and falls back to a local
// keyword detector when the service is unreachable or misbehaves.
package detect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"emoterm/domain"
)

// Upstream is the remote emotion model. Implemented by watson.Client.
type Upstream interface {
	EmotionPredict(ctx context.Context, text string) (domain.Scores, error)
}

// Detector orchestrates upstream and fallback detection.
type Detector struct {
	upstream Upstream
}

// NewDetector creates a Detector. A nil upstream means offline mode:
// every detection uses the rule-based fallback.
func NewDetector(upstream Upstream) *Detector {
	return &Detector{upstream: upstream}
}

// Detect scores the text.
//
//   - Blank or whitespace-only text → domain.ErrBlankText.
//   - Upstream 400 → domain.ErrInvalidText.
//   - Upstream success → its scores.
//   - Any other upstream failure → rule-based fallback, still a success.
func (d *Detector) Detect(ctx context.Context, text string) (domain.Scores, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Scores{}, domain.ErrBlankText
	}

	if d.upstream == nil {
		return RuleScores(text), nil
	}

	scores, err := d.upstream.EmotionPredict(ctx, text)
	if err == nil {
		return scores, nil
	}
	if errors.Is(err, domain.ErrInvalidText) {
		return domain.Scores{}, fmt.Errorf("upstream: %w", domain.ErrInvalidText)
	}

	slog.Warn("upstream detection failed, using rule fallback", "error", err)
	return RuleScores(text), nil
}
