// Package server exposes the emotion detector over HTTP.
package server

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"emoterm/domain"
)

//go:embed index.html
var indexHTML string

// invalidTextMessage is returned for blank input and for text the
// detector refuses to score. Served with status 200: clients display
// the body either way.
const invalidTextMessage = "Invalid text! Please try again!"

// DetectService scores text. Implemented by detect.Detector.
type DetectService interface {
	Detect(ctx context.Context, text string) (domain.Scores, error)
}

// Register mounts the detector routes on the echo instance.
func Register(e *echo.Echo, detector DetectService) {
	api := &detectorAPI{detector: detector}
	e.GET("/", api.index)
	e.POST("/emotionDetector", api.detectEmotion)
}

type detectorAPI struct {
	detector DetectService
}

// index serves the browser front end.
func (a *detectorAPI) index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}

// detectEmotion reads the "text" form field, scores it, and answers in
// plain text: either the formatted score sentence or the invalid-text
// message.
func (a *detectorAPI) detectEmotion(c echo.Context) error {
	text := strings.TrimSpace(c.FormValue("text"))

	scores, err := a.detector.Detect(c.Request().Context(), text)
	if err != nil {
		if errors.Is(err, domain.ErrBlankText) || errors.Is(err, domain.ErrInvalidText) {
			return c.String(http.StatusOK, invalidTextMessage)
		}
		slog.Error("emotion detection failed", "error", err)
		return c.String(http.StatusInternalServerError, "Error: could not analyze the text")
	}

	slog.Debug("analyzed text", "dominant", scores.Dominant(), "length", len(text))
	return c.String(http.StatusOK, scores.Sentence())
}
