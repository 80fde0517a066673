package detect

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"emoterm/domain"
)

type fakeUpstream struct {
	scores domain.Scores
	err    error
	calls  int
}

func (f *fakeUpstream) EmotionPredict(_ context.Context, _ string) (domain.Scores, error) {
	f.calls++
	return f.scores, f.err
}

type DetectorSuite struct {
	suite.Suite
}

func TestDetectorSuite(t *testing.T) {
	suite.Run(t, new(DetectorSuite))
}

func (s *DetectorSuite) TestBlankTextIsRejectedBeforeUpstream() {
	upstream := &fakeUpstream{}
	d := NewDetector(upstream)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := d.Detect(context.Background(), text)
		s.ErrorIs(err, domain.ErrBlankText)
	}
	s.Equal(0, upstream.calls)
}

func (s *DetectorSuite) TestUpstreamScoresAreUsedWhenAvailable() {
	upstream := &fakeUpstream{scores: domain.Scores{Joy: 0.8, Sadness: 0.1}}
	d := NewDetector(upstream)

	scores, err := d.Detect(context.Background(), "what a great day")
	s.NoError(err)
	s.Equal(0.8, scores.Joy)
	s.Equal("joy", scores.Dominant())
}

func (s *DetectorSuite) TestUpstreamRejectionPropagates() {
	upstream := &fakeUpstream{err: fmt.Errorf("predict: %w", domain.ErrInvalidText)}
	d := NewDetector(upstream)

	_, err := d.Detect(context.Background(), "????")
	s.ErrorIs(err, domain.ErrInvalidText)
}

func (s *DetectorSuite) TestUpstreamFailureFallsBackToRules() {
	upstream := &fakeUpstream{err: errors.New("connection refused")}
	d := NewDetector(upstream)

	scores, err := d.Detect(context.Background(), "I hate this, it makes me so mad")
	s.NoError(err)
	s.Equal("anger", scores.Dominant())
}

func (s *DetectorSuite) TestNilUpstreamMeansOfflineMode() {
	d := NewDetector(nil)

	scores, err := d.Detect(context.Background(), "I am terrified and scared")
	s.NoError(err)
	s.Equal("fear", scores.Dominant())
}
