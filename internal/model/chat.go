package model

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatTurn struct {
	Role    ChatRole `json:"role" validate:"oneof=user assistant"`
	Content string   `json:"content" validate:"max=4000"`
}

type ChatRequest struct {
	Message string     `json:"message" validate:"required,max=2000"`
	History []ChatTurn `json:"history" validate:"dive"`
}

type ChatSource string

const (
	ChatSourceLLM      ChatSource = "llm"
	ChatSourceFallback ChatSource = "fallback"
)

type ChatResponse struct {
	Reply  string     `json:"reply"`
	Source ChatSource `json:"source"`
}
