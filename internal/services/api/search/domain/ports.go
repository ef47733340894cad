// Package domain holds contracts for full-text search
package domain

import (
	"context"

	questionsdom "qanda/internal/services/api/questions/domain"
)

// Result is a ranked question in the list projection
type Result = questionsdom.QuestionSummary

// ServicePort defines the service contract for search
type ServicePort interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
