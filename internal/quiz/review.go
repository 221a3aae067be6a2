package quiz

// ReviewItem is the per-question outcome shown after submission.
type ReviewItem struct {
	Index     int      `json:"index"`
	Prompt    string   `json:"question"`
	Options   []string `json:"options"`
	Selected  string   `json:"selected,omitempty"`
	Answered  bool     `json:"answered"`
	Correct   string   `json:"correct_answer,omitempty"`
	IsCorrect bool     `json:"is_correct"`
}

// Review lists every question with the user's choice. The correct answer is only
// disclosed once the session is submitted.
func (s *Session) Review() []ReviewItem {
	out := make([]ReviewItem, len(s.items))
	for i, item := range s.items {
		selected, answered := s.answers[i]
		row := ReviewItem{
			Index:    i,
			Prompt:   item.Question.Prompt,
			Options:  append([]string(nil), item.Options[:]...),
			Selected: selected,
			Answered: answered,
		}
		if s.submitted {
			row.Correct = item.Question.CorrectAnswer
			row.IsCorrect = answered && selected == item.Question.CorrectAnswer
		}
		out[i] = row
	}
	return out
}
