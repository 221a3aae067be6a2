package question

// IncorrectCount is the number of distractors carried by every question.
const IncorrectCount = 3

// OptionCount is the number of options displayed for every question.
const OptionCount = IncorrectCount + 1

// Bank defines an on-disk question bank loaded from JSON or YAML.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is one quiz item with one correct and three incorrect answers.
type Question struct {
	Prompt           string                 `json:"question" yaml:"question"`
	CorrectAnswer    string                 `json:"correct_answer" yaml:"correct_answer"`
	IncorrectAnswers [IncorrectCount]string `json:"incorrect_answers" yaml:"incorrect_answers"`
}

// Options returns the correct answer followed by the incorrect answers.
func (q Question) Options() []string {
	options := make([]string, 0, OptionCount)
	options = append(options, q.CorrectAnswer)
	options = append(options, q.IncorrectAnswers[:]...)
	return options
}
