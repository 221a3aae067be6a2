package quiz

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/quan0401/quizz/internal/question"
)

// Messages shown to the user when an action is rejected.
const (
	WarnIncomplete = "Please answer all questions before submitting!"
	WarnSubmitted  = "Answers have already been submitted."
)

var (
	// ErrIncomplete is returned by Submit while any question is unanswered.
	ErrIncomplete = errors.New("quiz has unanswered questions")
	// ErrSubmitted is returned by mutating calls after submission.
	ErrSubmitted = errors.New("quiz already submitted")
	// ErrIndexOutOfRange is returned for a question index outside the session.
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrUnknownOption is returned when the selected text is not a displayed option.
	ErrUnknownOption = errors.New("option is not one of the displayed answers")
)

// Item is a question annotated with its displayed option order.
type Item struct {
	Question question.Question
	Options  [question.OptionCount]string
}

// Score is the result computed once at submission.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Session holds the loaded questions, the user's answers, and submission state.
type Session struct {
	id        string
	items     []Item
	answers   map[int]string
	submitted bool
	score     Score
}

// Option configures a new session.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand shuffles options with the given source instead of the global one.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// New builds a session, shuffling each question's options once.
func New(questions []question.Question, opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	shuffle := rand.Shuffle
	if o.rng != nil {
		shuffle = o.rng.Shuffle
	}

	items := make([]Item, len(questions))
	for i, q := range questions {
		item := Item{Question: q}
		copy(item.Options[:], q.Options())
		shuffle(len(item.Options), func(a, b int) {
			item.Options[a], item.Options[b] = item.Options[b], item.Options[a]
		})
		items[i] = item
	}
	return &Session{
		id:      uuid.NewString(),
		items:   items,
		answers: make(map[int]string, len(items)),
	}
}

// ID identifies this load of the quiz.
func (s *Session) ID() string {
	return s.id
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.items)
}

// Items returns a copy of the questions with their displayed options.
func (s *Session) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Answer returns the option selected for a question, if any.
func (s *Session) Answer(index int) (string, bool) {
	answer, ok := s.answers[index]
	return answer, ok
}

// Answered returns the number of questions with a selection.
func (s *Session) Answered() int {
	return len(s.answers)
}

// Submitted reports whether the session has been submitted.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Score returns the submitted score; ok is false before submission.
func (s *Session) Score() (Score, bool) {
	return s.score, s.submitted
}

// Select records the user's choice for a question.
func (s *Session) Select(index int, option string) error {
	if s.submitted {
		return ErrSubmitted
	}
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	for _, candidate := range s.items[index].Options {
		if candidate == option {
			s.answers[index] = option
			return nil
		}
	}
	return ErrUnknownOption
}

// Submit scores the session once every question has an answer.
func (s *Session) Submit() (Score, error) {
	if s.submitted {
		return s.score, ErrSubmitted
	}
	if len(s.answers) < len(s.items) {
		return Score{}, ErrIncomplete
	}
	correct := 0
	for i, item := range s.items {
		if s.answers[i] == item.Question.CorrectAnswer {
			correct++
		}
	}
	s.score = NewScore(correct, len(s.items))
	s.submitted = true
	return s.score, nil
}

// NewScore computes round(100 * correct / total), rounding halves up.
func NewScore(correct, total int) Score {
	if total <= 0 {
		return Score{Correct: correct, Total: total}
	}
	percent := int(math.Floor(100*float64(correct)/float64(total) + 0.5))
	return Score{Correct: correct, Total: total, Percent: percent}
}
