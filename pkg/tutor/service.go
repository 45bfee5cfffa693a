package tutor

import (
	"fmt"
	"strings"
	"time"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/llm"
	"github.com/Grodondo/aitutor/pkg/prompts"
	"github.com/Grodondo/aitutor/pkg/suggestions"
	"github.com/Grodondo/aitutor/pkg/utils"
)

// AnalysisRequest is what the outer surfaces (CLI, editor bridge) hand to the
// tutor: the code to review, the tutoring level, and whether the prompt should
// request the Line N: output convention.
type AnalysisRequest struct {
	Code               string        `json:"code"`
	Level              prompts.Level `json:"level"`
	IncludeLineNumbers bool          `json:"includeLineNumbers"`
}

// Service orchestrates one analysis run: prompt construction, the model call,
// and the extraction pipeline. The pipeline stages themselves are pure; the
// service owns logging and configuration.
type Service struct {
	config *config.Config
	logger *utils.Logger

	// respond is the model transport, swappable in tests.
	respond func(cfg *config.Config, messages []prompts.Message, timeout time.Duration) (string, error)
}

// NewService creates a tutor service instance.
func NewService(cfg *config.Config, logger *utils.Logger) *Service {
	return &Service{
		config:  cfg,
		logger:  logger,
		respond: llm.GetResponse,
	}
}

// Analyze runs a full analysis request and returns a fresh suggestion set. The
// returned set fully replaces any previous set for the document; callers must
// not merge.
func (s *Service) Analyze(req AnalysisRequest) (suggestions.SuggestionSet, error) {
	level := req.Level
	if level == "" {
		parsed, err := prompts.ParseLevel(s.config.DefaultLevel)
		if err != nil {
			parsed = prompts.LevelMedium
		}
		level = parsed
	}

	s.logger.LogProcessStep(fmt.Sprintf("Requesting %s-level analysis...", utils.CapitalizeWords(string(level))))
	messages := prompts.BuildAnalysisMessages(req.Code, level, req.IncludeLineNumbers)
	response, err := s.respond(s.config, messages, s.requestTimeout())
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	s.logger.Logf("Model response (%d chars): %s", len(response), utils.TruncateString(response, 200))

	set := s.ParseResponse(response, req.Code)
	s.logger.LogProcessStep(fmt.Sprintf("Extracted %d suggestion(s).", len(set)))
	return set, nil
}

// ParseResponse turns a raw model response into a deduplicated suggestion set.
// The marker-based extractor runs first; a marker-free response falls back to
// paragraph alignment so feedback is never silently dropped. All failures here
// degrade to fewer suggestions, never an error.
func (s *Service) ParseResponse(response, code string) suggestions.SuggestionSet {
	suggs := suggestions.Extract(response)
	if len(suggs) == 0 && strings.TrimSpace(response) != "" {
		s.logger.Log("No line markers found in response; aligning paragraphs instead.")
		suggs = suggestions.Align(response, strings.Split(code, "\n"))
	}
	return suggestions.Deduplicate(suggs)
}

// AnalyzeSnippet asks for a single focused improvement of one code block, for
// suggestion-at-cursor flows. The returned suggestion is anchored relative to
// the snippet (line 0 unless the model says otherwise).
func (s *Service) AnalyzeSnippet(snippet string, level prompts.Level) (suggestions.Suggestion, error) {
	if level == "" {
		level = prompts.LevelMedium
	}

	messages := prompts.BuildSnippetMessages(snippet, level)
	response, err := s.respond(s.config, messages, s.requestTimeout())
	if err != nil {
		return suggestions.Suggestion{}, fmt.Errorf("snippet request failed: %w", err)
	}

	set := s.ParseResponse(response, snippet)
	sorted := set.Sorted()
	if len(sorted) == 0 {
		return suggestions.Suggestion{}, fmt.Errorf("model returned no usable suggestion")
	}
	return sorted[0], nil
}

func (s *Service) requestTimeout() time.Duration {
	secs := s.config.RequestTimeoutSecs
	if secs <= 0 {
		secs = 180
	}
	return time.Duration(secs) * time.Second
}
