package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/medilink/backend/internal/config"
	"github.com/medilink/backend/internal/model"
	"google.golang.org/genai"
)

const (
	defaultChatModel = "gemini-2.0-flash"
	maxOutputTokens  = 512
)

// ChatClient sends chat turns to Gemini through the genai SDK.
type ChatClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewChatClient(ctx context.Context, cfg config.ChatConfig) (*ChatClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultChatModel
	}
	return &ChatClient{client: client, model: modelName, timeout: cfg.Timeout}, nil
}

// Complete returns the model's answer to message given the prior turns.
func (c *ChatClient) Complete(ctx context.Context, systemPrompt string, history []model.ChatTurn, message string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	temperature := float32(0.4)
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   maxOutputTokens,
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, toContents(history, message), genCfg)
	if err != nil {
		return "", fmt.Errorf("genai generate content: %w", err)
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("empty completion from %s", c.model)
	}
	return text, nil
}

func (c *ChatClient) Model() string {
	return c.model
}

func toContents(history []model.ChatTurn, message string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		text := strings.TrimSpace(turn.Content)
		if text == "" {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if turn.Role == model.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(text, role))
	}
	return append(contents, genai.NewContentFromText(message, genai.RoleUser))
}
