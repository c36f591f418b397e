package form

import (
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
)

// Status is the phase of a form's last submission.
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInFlight:
		return "in-flight"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State tracks one form's submission. The zero value is idle.
type State struct {
	status  Status
	message string
}

// Begin starts a submission, clearing the previous message. It returns false
// while a submission is already in flight.
func (s *State) Begin() bool {
	if s.status == StatusInFlight {
		return false
	}
	s.status = StatusInFlight
	s.message = ""
	return true
}

// Succeed ends the submission with an optional acknowledgement.
func (s *State) Succeed(message string) {
	s.status = StatusSuccess
	s.message = message
}

// Fail ends the submission with err's display message.
func (s *State) Fail(err error) {
	s.status = StatusError
	s.message = backend.Message(err)
}

// Status returns the current phase.
func (s State) Status() Status {
	return s.status
}

// Message returns the acknowledgement or error text of the last submission.
func (s State) Message() string {
	return s.message
}

// InFlight reports whether a submission is running.
func (s State) InFlight() bool {
	return s.status == StatusInFlight
}

// View renders the message line: "OK: ..." after a successful submission
// that carried a message, "Error: ..." after a failed one.
func (s State) View(tr *i18n.Translator) string {
	switch {
	case s.status == StatusError:
		return theme.StyleError.Render(tr.T(i18n.Error, s.message))
	case s.status == StatusSuccess && s.message != "":
		return theme.StyleSuccess.Render(tr.T(i18n.Success, s.message))
	}
	return ""
}

// Button renders the submit control, disabled while in flight.
func (s State) Button(label, busyLabel string) string {
	if s.InFlight() {
		return theme.StyleButtonDisabled.Render(busyLabel)
	}
	return theme.StyleButton.Render(label)
}
