// Package domain holds DTOs and contracts for questions
package domain

import "encoding/json"

// QuestionSummary is the list and search projection of a question
type QuestionSummary struct {
	ID       int64  `json:"id"        example:"5"`
	Title    string `json:"title"     example:"How do I close a channel twice?"`
	Preview  string `json:"preview"   example:"I have a producer that"`
	Creation int64  `json:"creation"  example:"1700000000"`
	Score    int    `json:"score"     example:"3"`
	UserID   int64  `json:"user_id"   example:"1"`
	UserName string `json:"user_name" example:"Alice"`
}

// QuestionDetail is a question with its full HTML body
type QuestionDetail struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Creation int64  `json:"creation"`
	Score    int    `json:"score"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// Comment is a comment on a question
type Comment struct {
	ID       int64  `json:"id"`
	Body     string `json:"body"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// CreateQuestionInput is the POST body for a new question
type CreateQuestionInput struct {
	Title  string      `json:"title"  validate:"required,lt=128"      example:"Why does my select block?"`
	Body   string      `json:"body"   validate:"required"             example:"<p>It blocks forever</p>"`
	UserID json.Number `json:"userId" validate:"required,numeric_id"  example:"1"`
}

// CreateCommentInput is the POST body for a new question comment
type CreateCommentInput struct {
	Body   string      `json:"body"   validate:"required"`
	UserID json.Number `json:"userId" validate:"required,numeric_id"`
}

// Created carries a generated id
type Created struct {
	ID int64 `json:"id" example:"42"`
}
