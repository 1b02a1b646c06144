package models

// QuestionCount is the number of fixed free-text questions an entry answers.
// Question indexes run 0..QuestionCount-1.
const QuestionCount = 3

// QuestionAnswerOption is one selectable answer for a question. Several
// options may share a question index; uniqueness of (QuestionIndex, Answer)
// is enforced by the write path, not by a storage constraint.
type QuestionAnswerOption struct {
	ID            string
	QuestionIndex int
	Answer        string
}

// DefaultAnswers is the fixed answer set seeded per question index on first
// use of the question-answer kind.
var DefaultAnswers = map[int][]string{
	0: {"Work", "Family", "Friends", "Health", "Weather"},
	1: {"Sleep", "Exercise", "Food", "Music"},
	2: {"Rest", "A walk", "Talking to someone", "Nothing"},
}
