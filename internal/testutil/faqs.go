package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/quan0401/quizz/pkg/backend"
)

// RandomFAQs returns n well-formed generated questions with distinct prompts and
// answers. The same seed yields the same questions.
func RandomFAQs(seed int64, n int) []backend.FAQ {
	faker := gofakeit.New(seed)
	out := make([]backend.FAQ, n)
	for i := range out {
		out[i] = backend.FAQ{
			Question:     fmt.Sprintf("%d. %s", i+1, faker.Question()),
			RightAnswer:  fmt.Sprintf("%s (a%d)", faker.Word(), i),
			WrongAnswer1: fmt.Sprintf("%s (b%d)", faker.Word(), i),
			WrongAnswer2: fmt.Sprintf("%s (c%d)", faker.Word(), i),
			WrongAnswer3: fmt.Sprintf("%s (d%d)", faker.Word(), i),
		}
	}
	return out
}
