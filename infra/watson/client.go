package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"emoterm/domain"
)

// DefaultURL is the Watson NLP EmotionPredict endpoint.
const DefaultURL = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/" +
	"NlpService/EmotionPredict"

const (
	modelIDHeader  = "grpc-metadata-mm-model-id"
	modelID        = "emotion_aggregated-workflow_lang_en_stock"
	requestTimeout = 8 * time.Second
)

// Client calls the Watson NLP EmotionPredict service.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a Watson client for the given endpoint URL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: requestTimeout},
	}
}

type rawDocument struct {
	Text string `json:"text"`
}

type predictRequest struct {
	RawDocument rawDocument `json:"raw_document"`
}

// EmotionPredict scores the text with the aggregated emotion workflow.
// A 400 response maps to domain.ErrInvalidText; any other failure
// (transport, non-200 status, unparseable body) is a plain error so
// callers can fall back to local detection.
func (c *Client) EmotionPredict(ctx context.Context, text string) (domain.Scores, error) {
	payload, err := json.Marshal(predictRequest{RawDocument: rawDocument{Text: text}})
	if err != nil {
		return domain.Scores{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return domain.Scores{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(modelIDHeader, modelID)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Scores{}, fmt.Errorf("emotion predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return domain.Scores{}, fmt.Errorf("emotion predict: %w", domain.ErrInvalidText)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Scores{}, fmt.Errorf("emotion predict returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Scores{}, fmt.Errorf("reading response: %w", err)
	}

	return parseScores(data)
}

func parseScores(data []byte) (domain.Scores, error) {
	emotion := gjson.GetBytes(data, "emotionPredictions.0.emotion")
	if !emotion.Exists() {
		return domain.Scores{}, fmt.Errorf("malformed emotion response: %s", truncate(data, 120))
	}
	return domain.Scores{
		Anger:   emotion.Get("anger").Float(),
		Disgust: emotion.Get("disgust").Float(),
		Fear:    emotion.Get("fear").Float(),
		Joy:     emotion.Get("joy").Float(),
		Sadness: emotion.Get("sadness").Float(),
	}, nil
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
