package questions

import "codeberg.org/zenfocus/server/zenfocus/questions"

// QuestionsResponse wraps a list of questions
type QuestionsResponse struct {
	Questions []questions.Question `json:"questions"`
}
