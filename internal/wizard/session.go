package wizard

import "github.com/changhyeonkim/tutor-board/go-api-server/internal/board"

// Session is one pass through the posting wizard: a step pointer plus answers.
// It keeps no step list of its own; every call recomputes it from the answers.
type Session struct {
	Step    int     `json:"step"`
	Answers Answers `json:"answers"`

	board     *board.Board
	validator *Validator
}

func NewSession(b *board.Board) *Session {
	return ResumeSession(b, 1, Answers{})
}

// ResumeSession rebuilds a session posted back by a client.
func ResumeSession(b *board.Board, step int, answers Answers) *Session {
	s := &Session{
		Step:      step,
		Answers:   answers,
		board:     b,
		validator: NewValidator(b),
	}
	s.clamp()
	return s
}

func (s *Session) Steps() []Step {
	return ComputeSteps(s.board, &s.Answers)
}

func (s *Session) Total() int {
	return len(s.Steps())
}

// Current returns the question for the step pointer. A branching answer may have
// shortened the sequence since the pointer was set, so it is clamped first.
func (s *Session) Current() Step {
	s.clamp()
	step, _ := StepAt(s.board, &s.Answers, s.Step)
	return step
}

// Next moves forward when the current step passes validation. On failure the
// pointer is unchanged and the reason is returned.
func (s *Session) Next() (bool, string) {
	s.clamp()
	if ok, reason := s.validator.CanAdvance(s.Step, &s.Answers); !ok {
		return false, reason
	}
	if s.Step < s.Total() {
		s.Step++
	}
	return true, ""
}

// Back moves to the previous step; it never needs validation.
func (s *Session) Back() {
	s.clamp()
	if s.Step > 1 {
		s.Step--
	}
}

func (s *Session) IsLast() bool {
	return s.Step >= s.Total()
}

// Ready reports whether the answers can be submitted.
func (s *Session) Ready() (*Violation, bool) {
	v := s.validator.ValidateAll(&s.Answers)
	return v, v == nil
}

func (s *Session) clamp() {
	total := s.Total()
	if s.Step < 1 {
		s.Step = 1
	}
	if s.Step > total {
		s.Step = total
	}
}
