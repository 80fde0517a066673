package detect

import (
	"strings"

	"emoterm/domain"
)

// Keyword buckets for the offline fallback. Matching is substring-based
// on the lowercased text, so "disgusted" also hits "disgust".
var keywordBuckets = []struct {
	emotion  string
	keywords []string
}{
	{domain.Anger, []string{"angry", "mad", "hate", "furious", "annoy"}},
	{domain.Disgust, []string{"disgust", "disgusted", "gross"}},
	{domain.Fear, []string{"afraid", "scared", "fear", "terrified"}},
	{domain.Joy, []string{"happy", "glad", "love", "joy", "excited"}},
	{domain.Sadness, []string{"sad", "unhappy", "depressed", "sorrow"}},
}

// defaultScores is returned when no keyword matches: a mild,
// joy-dominant distribution rather than all zeros.
var defaultScores = domain.Scores{
	Anger:   0.1,
	Disgust: 0.05,
	Fear:    0.05,
	Joy:     0.6,
	Sadness: 0.2,
}

// RuleScores is the keyword-based fallback detector. Each bucket scores
// one point per matched keyword; scores are normalized by the total.
func RuleScores(text string) domain.Scores {
	lower := strings.ToLower(text)

	hits := make(map[string]float64, len(keywordBuckets))
	var total float64
	for _, bucket := range keywordBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				hits[bucket.emotion]++
				total++
			}
		}
	}

	if total == 0 {
		return defaultScores
	}

	return domain.Scores{
		Anger:   hits[domain.Anger] / total,
		Disgust: hits[domain.Disgust] / total,
		Fear:    hits[domain.Fear] / total,
		Joy:     hits[domain.Joy] / total,
		Sadness: hits[domain.Sadness] / total,
	}
}
