// Package domain holds the document shapes and contracts of the ingest pipeline
package domain

import "time"

// Document is the whole data file: an array of questions with nested children
type Document struct {
	Questions []Question `json:"questions" validate:"dive"`
}

// User is an author as it appears nested in the data file
type User struct {
	ID   int64  `json:"id"   validate:"min=0"`
	Name string `json:"name" validate:"required"`
}

// Comment is a question or answer comment
type Comment struct {
	ID   int64  `json:"id"   validate:"min=0"`
	Body string `json:"body"`
	User User   `json:"user" validate:"required"`
}

// Answer is an answer with its comments
type Answer struct {
	ID       int64     `json:"id"       validate:"min=0"`
	Body     string    `json:"body"`
	Creation int64     `json:"creation"`
	Score    int       `json:"score"`
	Accepted bool      `json:"accepted"`
	User     User      `json:"user"     validate:"required"`
	Comments []Comment `json:"comments" validate:"dive"`
}

// Question is a top-level question with its comments and answers
type Question struct {
	ID       int64     `json:"id"       validate:"min=0"`
	Title    string    `json:"title"    validate:"max=128"`
	Body     string    `json:"body"`
	Creation int64     `json:"creation"`
	Score    int       `json:"score"`
	User     User      `json:"user"     validate:"required"`
	Comments []Comment `json:"comments" validate:"dive"`
	Answers  []Answer  `json:"answers"  validate:"dive"`
}

// QuestionRow is a question ready to be written, plain text already derived
type QuestionRow struct {
	ID       int64
	Title    string
	HTML     string
	Text     string
	Creation int64
	Score    int
	UserID   int64
}

// CommentRow is a comment row; ParentID is the question or answer id
type CommentRow struct {
	ID       int64
	ParentID int64
	HTML     string
	UserID   int64
}

// AnswerRow is an answer ready to be written
type AnswerRow struct {
	ID         int64
	QuestionID int64
	HTML       string
	Text       string
	Creation   int64
	Score      int
	UserID     int64
	Accepted   bool
}

// Stats summarizes one run
type Stats struct {
	RunID            string        `json:"run_id"`
	Questions        int           `json:"questions"`
	QuestionComments int           `json:"question_comments"`
	Answers          int           `json:"answers"`
	AnswerComments   int           `json:"answer_comments"`
	UsersInserted    int           `json:"users_inserted"`
	UsersSkipped     int           `json:"users_skipped"`
	Elapsed          time.Duration `json:"elapsed"`
}

// Add folds o into s; RunID and Elapsed are left alone
func (s *Stats) Add(o Stats) {
	s.Questions += o.Questions
	s.QuestionComments += o.QuestionComments
	s.Answers += o.Answers
	s.AnswerComments += o.AnswerComments
	s.UsersInserted += o.UsersInserted
	s.UsersSkipped += o.UsersSkipped
}

// Entity kinds used in errors and metrics
const (
	KindUser            = "user"
	KindQuestion        = "question"
	KindQuestionComment = "q_comment"
	KindAnswer          = "answer"
	KindAnswerComment   = "a_comment"
)
