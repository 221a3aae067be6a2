package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace and validates a question bank.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	normalized, seen := make([]Question, len(bank.Questions)), map[string]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q = normalizeQuestion(q)
		collectQuestionIssues(collector, prefix, q)
		if q.Prompt != "" {
			key := NormalizeAnswerText(q.Prompt)
			if _, exists := seen[key]; exists {
				collector.add(prefix+".question", fmt.Sprintf("duplicate question %q", q.Prompt))
			}
			seen[key] = struct{}{}
		}
		normalized[i] = q
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	bank.Questions = normalized
	return bank, nil
}

// Validate checks a single question and returns a ValidationError when it is unusable.
func Validate(q Question) error {
	collector := &issueCollector{}
	collectQuestionIssues(collector, "question", normalizeQuestion(q))
	return collector.result()
}

func normalizeQuestion(q Question) Question {
	q.Prompt = strings.TrimSpace(q.Prompt)
	q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
	for i := range q.IncorrectAnswers {
		q.IncorrectAnswers[i] = strings.TrimSpace(q.IncorrectAnswers[i])
	}
	return q
}

// collectQuestionIssues enforces four distinct non-empty options per question.
func collectQuestionIssues(collector *issueCollector, prefix string, q Question) {
	if q.Prompt == "" {
		collector.add(prefix+".question", "is required")
	}
	if q.CorrectAnswer == "" {
		collector.add(prefix+".correct_answer", "is required")
	}
	seen := map[string]struct{}{}
	if q.CorrectAnswer != "" {
		seen[NormalizeAnswerText(q.CorrectAnswer)] = struct{}{}
	}
	for i, answer := range q.IncorrectAnswers {
		field := fmt.Sprintf("%s.incorrect_answers[%d]", prefix, i)
		if answer == "" {
			collector.add(field, "is required")
			continue
		}
		key := NormalizeAnswerText(answer)
		if _, exists := seen[key]; exists {
			collector.add(field, fmt.Sprintf("duplicate option %q", answer))
			continue
		}
		seen[key] = struct{}{}
	}
}
