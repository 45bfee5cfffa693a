package tutor

import (
	"fmt"

	"github.com/Grodondo/aitutor/pkg/suggestions"
	"github.com/Grodondo/aitutor/pkg/utils"
)

// LogFeedback is the default feedback sink: accept/reject outcomes are recorded
// in the workspace log so a future provider integration can consume them.
type LogFeedback struct {
	logger *utils.Logger
}

// NewLogFeedback creates a log-backed feedback sink.
func NewLogFeedback(logger *utils.Logger) *LogFeedback {
	return &LogFeedback{logger: logger}
}

func (f *LogFeedback) SuggestionAccepted(s suggestions.Suggestion) {
	f.logger.Log(fmt.Sprintf("Feedback: accepted suggestion at line %d: %s", s.LineIndex, s.Message))
}

func (f *LogFeedback) SuggestionRejected(s suggestions.Suggestion) {
	f.logger.Log(fmt.Sprintf("Feedback: rejected suggestion at line %d: %s", s.LineIndex, s.Message))
}
