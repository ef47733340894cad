package domain

import "context"

// ServicePort defines the service contract for questions
type ServicePort interface {
	List(ctx context.Context) ([]QuestionSummary, error)
	Get(ctx context.Context, id int64) (QuestionDetail, error)
	Create(ctx context.Context, in CreateQuestionInput) (Created, error)
	Comments(ctx context.Context, questionID int64) ([]Comment, error)
	AddComment(ctx context.Context, questionID int64, in CreateCommentInput) (Created, error)
}
