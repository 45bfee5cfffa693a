package tutor

import (
	"errors"
	"testing"
	"time"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/prompts"
	"github.com/Grodondo/aitutor/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubbedService(t *testing.T, response string, err error) *Service {
	t.Helper()
	s := NewService(&config.Config{DefaultLevel: "medium", RequestTimeoutSecs: 1}, utils.GetLogger(true))
	s.respond = func(*config.Config, []prompts.Message, time.Duration) (string, error) {
		return response, err
	}
	return s
}

func TestAnalyze_MarkerResponse(t *testing.T) {
	response := "Line 2: Use a clearer name\nThe variable x says nothing.\nBefore: `x = 1`\nAfter: `count = 1`\n"
	s := stubbedService(t, response, nil)

	set, err := s.Analyze(AnalysisRequest{Code: "package main\nx = 1", IncludeLineNumbers: true})
	require.NoError(t, err)
	require.Len(t, set, 1)
	got := set[1]
	assert.Equal(t, "Use a clearer name", got.Message)
	assert.Equal(t, "- x = 1\n+ count = 1", got.Diff)
}

func TestAnalyze_FallsBackToParagraphAlignment(t *testing.T) {
	response := "The function never checks its error return.\n\nNaming could be more descriptive throughout."
	s := stubbedService(t, response, nil)

	set, err := s.Analyze(AnalysisRequest{Code: "line one\nline two\nline three\nline four"})
	require.NoError(t, err)
	assert.Len(t, set, 2)
	for line := range set {
		assert.GreaterOrEqual(t, line, 0)
		assert.Less(t, line, 4)
	}
}

func TestAnalyze_TransportErrorPropagates(t *testing.T) {
	s := stubbedService(t, "", errors.New("connection refused"))
	_, err := s.Analyze(AnalysisRequest{Code: "code"})
	assert.Error(t, err)
}

func TestParseResponse_DeduplicatesRepeatedLines(t *testing.T) {
	response := "Line 3: short\nbrief\nLine 3: richer\na much longer explanation of the issue\n"
	s := stubbedService(t, "", nil)

	set := s.ParseResponse(response, "a\nb\nc\nd")
	require.Len(t, set, 1)
	assert.Equal(t, "richer", set[2].Message)
}

func TestParseResponse_EmptyResponseYieldsEmptySet(t *testing.T) {
	s := stubbedService(t, "", nil)
	set := s.ParseResponse("   \n", "code")
	assert.Empty(t, set)
}

func TestAnalyzeSnippet_ReturnsFirstSuggestion(t *testing.T) {
	response := "Line 1: Tighten the loop\nUse range.\nBefore: `for i := 0; i < n; i++ {`\nAfter: `for i := range items {`\n"
	s := stubbedService(t, response, nil)

	sugg, err := s.AnalyzeSnippet("for i := 0; i < n; i++ {\n}", prompts.LevelMedium)
	require.NoError(t, err)
	assert.Equal(t, 0, sugg.LineIndex)
	assert.Equal(t, "Tighten the loop", sugg.Message)
	assert.NotEmpty(t, sugg.Diff)
}

func TestAnalyzeSnippet_NoUsableSuggestion(t *testing.T) {
	s := stubbedService(t, "Sure, happy to take a look.", nil)
	_, err := s.AnalyzeSnippet("x", prompts.LevelNovice)
	assert.Error(t, err)
}
