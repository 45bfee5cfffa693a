package editor

import (
	"errors"
	"strings"

	"github.com/Grodondo/aitutor/pkg/suggestions"
)

// ErrNoSuggestedCode is returned by Preview when the suggestion's diff yields
// no replacement text. The buffer is untouched in that case.
var ErrNoSuggestedCode = errors.New("no suggested code found in diff")

// PendingEdit is the transient record held while a suggestion is previewed in
// the buffer. It exists only between Preview and Accept/Reject.
type PendingEdit struct {
	StartLine  int      // first line of the replaced range
	EndLine    int      // last line currently occupied by the proposed text
	Original   []string // snapshot of the replaced range
	Proposed   []string // lines now shown in the buffer
	Suggestion suggestions.Suggestion
}

// FeedbackSink receives the outcome of a previewed suggestion so an upstream
// collaborator can learn from it. Implementations must tolerate being called
// synchronously from the lifecycle controller.
type FeedbackSink interface {
	SuggestionAccepted(s suggestions.Suggestion)
	SuggestionRejected(s suggestions.Suggestion)
}

// Controller drives the preview/accept/reject lifecycle for one buffer. At most
// one PendingEdit is open at a time; starting a new preview resolves the open
// one as rejected first, so speculative edits never overlap.
type Controller struct {
	buf      *Buffer
	pending  *PendingEdit
	feedback FeedbackSink // optional
}

// NewController creates a lifecycle controller for a buffer. feedback may be nil.
func NewController(buf *Buffer, feedback FeedbackSink) *Controller {
	return &Controller{buf: buf, feedback: feedback}
}

// Pending returns the currently open edit, or nil when idle.
func (c *Controller) Pending() *PendingEdit {
	return c.pending
}

// Preview applies a suggestion speculatively: the enclosing block at the
// suggestion's line is replaced by the diff's added lines, and the original
// text is snapshotted for revert. A suggestion whose diff yields no code fails
// with ErrNoSuggestedCode before any buffer mutation, leaving an already open
// preview untouched as well.
func (c *Controller) Preview(s suggestions.Suggestion) error {
	proposed := AddedLines(s.Diff)
	if len(proposed) == 0 {
		return ErrNoSuggestedCode
	}

	if c.pending != nil {
		if err := c.Reject(); err != nil {
			return err
		}
	}

	anchor := c.buf.ClampLine(s.LineIndex)
	start, end := FindBlockBounds(c.buf.Lines(), anchor)
	original := c.buf.Range(start, end)
	c.buf.ReplaceRange(start, end, proposed)

	c.pending = &PendingEdit{
		StartLine:  start,
		EndLine:    start + len(proposed) - 1,
		Original:   original,
		Proposed:   proposed,
		Suggestion: s,
	}
	return nil
}

// Accept commits the previewed edit: the proposed text stays in the buffer and
// the snapshot is discarded. Signals positive feedback when a sink is attached.
func (c *Controller) Accept() error {
	if c.pending == nil {
		return errors.New("no pending edit to accept")
	}
	edit := c.pending
	c.pending = nil
	if c.feedback != nil {
		c.feedback.SuggestionAccepted(edit.Suggestion)
	}
	return nil
}

// Reject reverts the previewed edit, restoring the original text over the range
// the proposal occupies, and returns the controller to idle.
func (c *Controller) Reject() error {
	if c.pending == nil {
		return errors.New("no pending edit to reject")
	}
	edit := c.pending
	c.pending = nil
	c.buf.ReplaceRange(edit.StartLine, edit.EndLine, edit.Original)
	if c.feedback != nil {
		c.feedback.SuggestionRejected(edit.Suggestion)
	}
	return nil
}

// Dismiss resolves an open preview without an explicit user choice. Dismissal
// is treated as rejection, the conservative default. Safe to call when idle.
func (c *Controller) Dismiss() {
	if c.pending != nil {
		_ = c.Reject()
	}
}

// AddedLines extracts the proposed replacement from a diff: lines beginning
// with "+" (excluding "+++" headers), with the marker and one following space
// stripped. A diff with no "+" lines at all is treated as plain replacement
// text. An empty diff yields nil.
func AddedLines(diff string) []string {
	if strings.TrimSpace(diff) == "" {
		return nil
	}

	var added []string
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++") {
			continue
		}
		if strings.HasPrefix(line, "+") {
			added = append(added, strings.TrimPrefix(strings.TrimPrefix(line, "+"), " "))
		}
	}
	if len(added) > 0 {
		return added
	}
	return strings.Split(diff, "\n")
}
