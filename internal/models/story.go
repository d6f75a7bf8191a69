package models

import "time"

const (
	StoryStatusDraft    = "draft"
	StoryStatusComplete = "complete"
)

type Story struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	PromptID       string    `json:"prompt_id"`
	PromptTitle    string    `json:"prompt_title"`
	PromptQuestion string    `json:"prompt_question"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	WordCount      int       `json:"word_count"`
	AudioURL       string    `json:"audio_url,omitempty"`
	Transcription  string    `json:"transcription,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StoryPrompt struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	Order      int      `json:"order"`
}

type StoryProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type StoryRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	PromptID string `json:"prompt_id"`
	Status   string `json:"status" validate:"omitempty,oneof=draft complete"`
}
