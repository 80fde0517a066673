package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// analyzerService implements app.Analyzer against the emoterm server.
type analyzerService struct {
	client *Client
}

// NewAnalyzerService creates an Analyzer backed by the server's
// /emotionDetector endpoint.
func NewAnalyzerService(client *Client) *analyzerService {
	return &analyzerService{client: client}
}

// Analyze posts the text as the single form field "text" and returns the
// response body as-is. Empty text is sent like any other value; the server
// decides what to do with it. Spaces encode as '+' per url.Values.Encode.
func (s *analyzerService) Analyze(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("text", text)

	data, err := s.client.PostForm(ctx, "/emotionDetector", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("analyzing text: %w", err)
	}

	return string(data), nil
}
