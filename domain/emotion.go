package domain

import "fmt"

// Emotion names, in the order the formatted response lists them.
const (
	Anger   = "anger"
	Disgust = "disgust"
	Fear    = "fear"
	Joy     = "joy"
	Sadness = "sadness"
)

// Scores holds the per-emotion confidence for a piece of text.
// Values are in [0, 1] but do not necessarily sum to 1 (the upstream
// model reports independent confidences).
type Scores struct {
	Anger   float64
	Disgust float64
	Fear    float64
	Joy     float64
	Sadness float64
}

// Dominant returns the name of the highest-scoring emotion.
// Ties resolve in the listing order above, matching the upstream model's
// own tie-breaking.
func (s Scores) Dominant() string {
	name := Anger
	best := s.Anger
	for _, e := range []struct {
		name  string
		score float64
	}{
		{Disgust, s.Disgust},
		{Fear, s.Fear},
		{Joy, s.Joy},
		{Sadness, s.Sadness},
	} {
		if e.score > best {
			name, best = e.name, e.score
		}
	}
	return name
}

// Sentence renders the scores as the canonical response sentence
// returned by the /emotionDetector endpoint.
func (s Scores) Sentence() string {
	return fmt.Sprintf(
		"For the given statement, the system response is 'anger': %v, "+
			"'disgust': %v, 'fear': %v, 'joy': %v and 'sadness': %v. "+
			"The dominant emotion is %s.",
		s.Anger, s.Disgust, s.Fear, s.Joy, s.Sadness, s.Dominant(),
	)
}
