// Package domain holds DTOs and contracts for users
package domain

import "context"

// User is the public projection of a user
type User struct {
	ID   int64  `json:"id"   example:"1"`
	Name string `json:"name" example:"Alice"`
}

// ServicePort defines the service contract for users
type ServicePort interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
}
