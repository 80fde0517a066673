package app

import "context"

// Analyzer sends text to the emotion detector endpoint and returns the
// response body verbatim. The body is opaque: success and error responses
// are both plain text and the caller displays whichever it gets.
// Implemented by infrastructure (api.NewAnalyzerService).
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}
