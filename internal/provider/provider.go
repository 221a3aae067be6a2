// Package provider fetches generated questions from the remote service and
// falls back to a built-in set when the call fails.
package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quan0401/quizz/internal/lib/logger/sl"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/pkg/backend"
)

// Notice texts shown after a generation attempt.
const (
	MsgGenerated      = "Questions generated successfully!"
	MsgStatusFallback = "Failed to generate questions. Using default questions."
	MsgErrorFallback  = "An error occurred. Using default questions."
)

// Form validation messages.
const (
	MsgTopicRequired = "Please enter the knowledge scope!"
	MsgCountRequired = "Please enter the number of questions!"
)

var (
	// ErrTopicRequired is returned for an empty or blank topic.
	ErrTopicRequired = errors.New("topic is required")
	// ErrInvalidCount is returned when fewer than one question is requested.
	ErrInvalidCount = errors.New("question count must be at least 1")
	// ErrNoQuestions is returned when a successful response carries no usable questions.
	ErrNoQuestions = errors.New("response contained no usable questions")
)

// Result is the outcome of one generation attempt.
type Result struct {
	Questions []question.Question `json:"questions"`
	Fallback  bool                `json:"fallback"`
	Notice    notice.Notice       `json:"notice"`
}

// Provider generates questions through a backend client.
type Provider struct {
	log      *slog.Logger
	client   backend.Client
	fallback []question.Question
}

// New constructs a provider. A nil fallback uses question.GeneratorDefaults.
func New(client backend.Client, fallback []question.Question, log *slog.Logger) *Provider {
	if fallback == nil {
		fallback = question.GeneratorDefaults()
	}
	return &Provider{log: log, client: client, fallback: fallback}
}

// ValidateInput checks the form values before any remote call is made.
func ValidateInput(topic string, count int) error {
	if question.NormalizeTopic(topic) == "" {
		return ErrTopicRequired
	}
	if count < 1 {
		return ErrInvalidCount
	}
	return nil
}

// InputMessage returns the form message for a validation error.
func InputMessage(err error) string {
	switch {
	case errors.Is(err, ErrTopicRequired):
		return MsgTopicRequired
	case errors.Is(err, ErrInvalidCount):
		return MsgCountRequired
	default:
		return err.Error()
	}
}

// Generate asks the service for count questions on topic. Invalid input is
// returned as an error with no remote call. Every remote failure yields the
// fallback set and a notice instead of an error.
func (p *Provider) Generate(ctx context.Context, topic string, count int) (Result, error) {
	const op = "provider.Generate"

	if err := ValidateInput(topic, count); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	topic = question.NormalizeTopic(topic)

	log := p.log.With(
		slog.String("op", op),
		slog.String("topic", topic),
		slog.Int("count", count),
	)
	log.Info("generating questions")

	res, err := p.client.CreateFAQ(ctx, backend.CreateFAQRequest{KnowledgeScope: topic, NumQuestions: count})
	if err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			log.Warn("service rejected generation", sl.Err(err))
			return p.fallbackResult(notice.Error(MsgStatusFallback)), nil
		}
		log.Error("failed to generate questions", sl.Err(err))
		return p.fallbackResult(notice.Error(MsgErrorFallback)), nil
	}

	questions := p.fromFAQs(log, res.FAQs)
	if len(questions) == 0 {
		log.Warn("service returned no questions", sl.Err(ErrNoQuestions))
		return p.fallbackResult(notice.Error(MsgStatusFallback)), nil
	}

	log.Info("questions generated", slog.Int("received", len(questions)))
	return Result{Questions: questions, Notice: notice.Success(MsgGenerated)}, nil
}

// fromFAQs maps remote entries to questions, dropping entries that cannot be
// displayed as four distinct options.
func (p *Provider) fromFAQs(log *slog.Logger, faqs []backend.FAQ) []question.Question {
	out := make([]question.Question, 0, len(faqs))
	for i, faq := range faqs {
		q := FromFAQ(faq)
		if err := question.Validate(q); err != nil {
			log.Warn("dropping generated question", slog.Int("index", i), sl.Err(err))
			continue
		}
		out = append(out, q)
	}
	return out
}

func (p *Provider) fallbackResult(n notice.Notice) Result {
	questions := make([]question.Question, len(p.fallback))
	copy(questions, p.fallback)
	return Result{Questions: questions, Fallback: true, Notice: n}
}

// FromFAQ converts a remote entry into a question.
func FromFAQ(faq backend.FAQ) question.Question {
	return question.Question{
		Prompt:        strings.TrimSpace(faq.Question),
		CorrectAnswer: strings.TrimSpace(faq.RightAnswer),
		IncorrectAnswers: [question.IncorrectCount]string{
			strings.TrimSpace(faq.WrongAnswer1),
			strings.TrimSpace(faq.WrongAnswer2),
			strings.TrimSpace(faq.WrongAnswer3),
		},
	}
}
