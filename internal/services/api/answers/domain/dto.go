// Package domain holds DTOs and contracts for answers
package domain

import "encoding/json"

// AnswerSummary is the list projection of an answer
type AnswerSummary struct {
	ID         int64  `json:"id"          example:"20"`
	QuestionID int64  `json:"question_id" example:"5"`
	Preview    string `json:"preview"     example:"Use a buffered channel"`
	Creation   int64  `json:"creation"    example:"1700000100"`
	Score      int    `json:"score"       example:"2"`
	UserID     int64  `json:"user_id"     example:"1"`
	UserName   string `json:"user_name"   example:"Alice"`
	Accepted   bool   `json:"accepted"    example:"true"`
}

// AnswerDetail is an answer with its full HTML body
type AnswerDetail struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Body       string `json:"body"`
	Creation   int64  `json:"creation"`
	Score      int    `json:"score"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	Accepted   bool   `json:"accepted"`
}

// Comment is a comment on an answer
type Comment struct {
	ID       int64  `json:"id"`
	Body     string `json:"body"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// CreateAnswerInput is the POST body for a new answer
type CreateAnswerInput struct {
	Body   string      `json:"body"   validate:"required"`
	UserID json.Number `json:"userId" validate:"required,numeric_id" example:"1"`
}

// Created carries a generated id
type Created struct {
	ID int64 `json:"id" example:"42"`
}
