package guidance

import (
	"context"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/ratelimit"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/llm/chatgpt"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/metrics"
)

// Config controls the chat proxy.
type Config struct {
	Model               string
	Temperature         float32
	MaxCompletionTokens int
	// Persona opens the system prompt.
	Persona        string
	DefaultMessage string
	RequirePremium bool
}

// UserProfile is the optional onboarding context sent by the client.
type UserProfile struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Dreams   string `json:"dreams"`
}

// Request is a single chat turn.
type Request struct {
	Message     string       `json:"message"`
	UserProfile *UserProfile `json:"userProfile,omitempty"`
}

// Response is the guide's reply.
type Response struct {
	Guidance          string             `json:"guidance"`
	Usage             metrics.TokenUsage `json:"usage"`
	RemainingRequests int                `json:"remainingRequests"`
}

// SpiritualProfile is the stored per-user personalization row.
type SpiritualProfile struct {
	UserID               string   `json:"userId"`
	LifePathNumber       int      `json:"lifePathNumber,omitempty"`
	PersonalSpiritGuides []string `json:"personalSpiritGuides,omitempty"`
	SoulContract         string   `json:"soulContract,omitempty"`
	StarseedOrigins      []string `json:"starseedOrigins,omitempty"`
	AkashicAccessLevel   string   `json:"akashicAccessLevel,omitempty"`
}

// ChatClient is the completion API.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// TokenCounter estimates tokens when the API omits usage.
type TokenCounter interface {
	CountTokens(text string) int
}

// UsageRecorder receives per-request token usage.
type UsageRecorder interface {
	RecordTokens(model string, usage metrics.TokenUsage)
}

// RateLimiter admits or rejects a keyed request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) ratelimit.Decision
}

// ProfileRepository loads stored spiritual profiles.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (SpiritualProfile, bool, error)
	Upsert(ctx context.Context, profile SpiritualProfile) error
}
