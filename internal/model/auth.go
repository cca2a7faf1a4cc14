package model

// MagicLinkRequest はマジックリンク送信APIのリクエストボディ
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse はマジックリンク検証成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
