// Package http provides http transport for questions
package http

import (
	stdhttp "net/http"

	"qanda/internal/modkit/httpkit"
	perr "qanda/internal/platform/errors"
	answersdom "qanda/internal/services/api/answers/domain"
	"qanda/internal/services/api/questions/domain"
	svc "qanda/internal/services/api/questions/service"
)

// Register mounts questions endpoints on the given router
// answers serves /{id}/answers; when nil those routes answer 501
func Register(r httpkit.Router, s svc.Service, answers answersdom.QuestionAnswersPort) {
	h := &handlers{svc: s, answers: answers}
	httpkit.GetJSON(r, "/", h.list)
	httpkit.PostJSON[domain.CreateQuestionInput](r, "/", h.create)
	httpkit.GetJSON(r, "/{id}", h.get)
	httpkit.GetJSON(r, "/{id}/comments", h.comments)
	httpkit.PostJSON[domain.CreateCommentInput](r, "/{id}/comments", h.addComment)
	httpkit.GetJSON(r, "/{id}/answers", h.answersOf)
	httpkit.PostJSON[answersdom.CreateAnswerInput](r, "/{id}/answers", h.addAnswer)
}

type handlers struct {
	svc     svc.Service
	answers answersdom.QuestionAnswersPort
}

// GET /questions
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// POST /questions
func (h *handlers) create(r *stdhttp.Request, in domain.CreateQuestionInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// GET /questions/{id}
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// GET /questions/{id}/comments
func (h *handlers) comments(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Comments(r.Context(), id)
}

// POST /questions/{id}/comments
func (h *handlers) addComment(r *stdhttp.Request, in domain.CreateCommentInput) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.AddComment(r.Context(), id, in)
}

// GET /questions/{id}/answers
func (h *handlers) answersOf(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	if h.answers == nil {
		return nil, perr.NotImplementedf("answers are not wired")
	}
	return h.answers.ForQuestion(r.Context(), id)
}

// POST /questions/{id}/answers
func (h *handlers) addAnswer(r *stdhttp.Request, in answersdom.CreateAnswerInput) (any, error) {
	id, err := httpkit.PathID(r, "id")
	if err != nil {
		return nil, err
	}
	if h.answers == nil {
		return nil, perr.NotImplementedf("answers are not wired")
	}
	return h.answers.Create(r.Context(), id, in)
}
