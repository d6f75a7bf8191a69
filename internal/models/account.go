package models

import "time"

const (
	PlanStarter = "starter"
	PlanPremium = "premium"
	PlanLegacy  = "legacy"
)

type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type UserProfile struct {
	UID              string    `json:"uid"`
	Email            string    `json:"email"`
	Plan             string    `json:"plan"`
	DisplayName      string    `json:"display_name,omitempty"`
	HasVoiceFeatures bool      `json:"has_voice_features"`
	HasAICloning     bool      `json:"has_ai_cloning"`
	CreatedAt        time.Time `json:"created_at"`
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Plan     string `json:"plan" validate:"required,oneof=starter premium legacy"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
