package models

import "time"

// SessionInfo - состояние текущей сессии
type SessionInfo struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// Credential - ответ сервиса на вход
type Credential struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
