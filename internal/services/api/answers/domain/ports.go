package domain

import "context"

// QuestionAnswersPort is the slice of answers the questions module serves under /questions/{id}/answers
type QuestionAnswersPort interface {
	ForQuestion(ctx context.Context, questionID int64) ([]AnswerSummary, error)
	Create(ctx context.Context, questionID int64, in CreateAnswerInput) (Created, error)
}

// ServicePort defines the service contract for answers
type ServicePort interface {
	QuestionAnswersPort
	List(ctx context.Context) ([]AnswerSummary, error)
	Get(ctx context.Context, id int64) (AnswerDetail, error)
	Comments(ctx context.Context, answerID int64) ([]Comment, error)
}
