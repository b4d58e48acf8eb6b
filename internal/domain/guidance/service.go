package guidance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/llm/chatgpt"
	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/metrics"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

const (
	defaultMessage             = "What guidance do the stars have for me today?"
	defaultMaxCompletionTokens = 500
	defaultGuideName           = "Spirit Guide"
	defaultSoulMission         = "Divine awakening"
	defaultAkashicAccess       = "basic"
	defaultStarseed            = "Universal Light Being"
	maxProfileEntries          = 10
)

// Service answers chat turns with personalized guidance.
type Service interface {
	Chat(ctx context.Context, userID string, req Request) (Response, error)
	SpiritualProfile(ctx context.Context, userID string) (SpiritualProfile, error)
	SaveSpiritualProfile(ctx context.Context, userID string, profile SpiritualProfile) (SpiritualProfile, error)
}

// Dependencies are the collaborators of the chat proxy.
type Dependencies struct {
	Client        ChatClient
	Moderation    moderation.Service
	Limiter       RateLimiter
	Subscriptions subscription.Service
	Cosmic        cosmic.Service
	Profiles      ProfileRepository
	Tokens        TokenCounter
	Usage         UsageRecorder
}

type service struct {
	cfg    Config
	deps   Dependencies
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the guidance domain.
func NewService(cfg Config, deps Dependencies, logger *slog.Logger) Service {
	if cfg.MaxCompletionTokens <= 0 {
		cfg.MaxCompletionTokens = defaultMaxCompletionTokens
	}
	if strings.TrimSpace(cfg.DefaultMessage) == "" {
		cfg.DefaultMessage = defaultMessage
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		logger: logger.With("component", "guidance.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Chat(ctx context.Context, userID string, req Request) (Response, error) {
	if strings.TrimSpace(userID) == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeUnauthorized, "user not authenticated", nil)
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = s.cfg.DefaultMessage
	} else if err := s.deps.Moderation.Screen(ctx, message); err != nil {
		return Response{}, err
	}
	if req.UserProfile != nil && strings.TrimSpace(req.UserProfile.Dreams) != "" {
		if err := s.deps.Moderation.Screen(ctx, req.UserProfile.Dreams); err != nil {
			return Response{}, err
		}
	}

	if s.cfg.RequirePremium {
		if err := s.deps.Subscriptions.RequirePremium(ctx, userID); err != nil {
			return Response{}, err
		}
	}

	decision := s.deps.Limiter.Allow(ctx, "guidance:"+userID)
	if !decision.Allowed {
		wait := int(math.Ceil(decision.RetryAfter.Seconds()))
		return Response{}, apperrors.Wrap(apperrors.CodeRateLimited,
			fmt.Sprintf("too many guidance requests, try again in %d seconds", wait), nil)
	}

	now := s.now()
	sky := s.deps.Cosmic.Lookup(ctx, now)
	seeker := s.seekerFor(ctx, userID, req.UserProfile)
	systemPrompt := buildSystemPrompt(s.cfg.Persona, now, sky, seeker)

	resp, err := s.deps.Client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:               s.cfg.Model,
		Temperature:         s.cfg.Temperature,
		MaxCompletionTokens: s.cfg.MaxCompletionTokens,
		Messages: []chatgpt.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeLLM, "guidance request failed", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeLLM, "guidance model returned no choices", nil)
	}
	reply := moderation.Sanitize(resp.Choices[0].Message.Content)
	if reply == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeLLM, "guidance model returned an empty reply", nil)
	}

	usage := s.usageFor(resp.Usage, systemPrompt, message, reply)
	model := resp.Model
	if model == "" {
		model = s.cfg.Model
	}
	if s.deps.Usage != nil {
		s.deps.Usage.RecordTokens(model, usage)
	}
	s.logger.Info("guidance generated",
		"user_id", userID,
		"moon_phase", sky.MoonPhase,
		"total_tokens", usage.TotalTokens,
		"estimated", usage.Estimated,
	)
	return Response{Guidance: reply, Usage: usage, RemainingRequests: decision.Remaining}, nil
}

func (s *service) seekerFor(ctx context.Context, userID string, profile *UserProfile) seekerContext {
	seeker := seekerContext{
		GuideName:     defaultGuideName,
		SoulMission:   defaultSoulMission,
		SoulFrequency: numerology.SoulFrequency(userID),
		Starseeds:     []string{defaultStarseed},
		AkashicAccess: defaultAkashicAccess,
	}
	if profile != nil {
		seeker.Name = strings.TrimSpace(profile.Name)
		seeker.Dreams = moderation.Sanitize(profile.Dreams)
		if strings.TrimSpace(profile.Birthday) != "" {
			birth, err := util.ParseDate(profile.Birthday, s.now())
			if err != nil {
				s.logger.Debug("ignoring unparseable birthday", "user_id", userID, "error", err)
			} else {
				soul := numerology.DeriveSoulProfile(userID, birth)
				seeker.BirthSign = soul.BirthSign
				seeker.LifePathNumber = soul.LifePathNumber
				seeker.GuideName = soul.GuideName
				seeker.SoulMission = soul.SoulMission
				seeker.SignCrystal = soul.SignCrystal
			}
		}
	}

	if s.deps.Profiles == nil {
		return withMeaning(seeker)
	}
	stored, ok, err := s.deps.Profiles.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("spiritual profile lookup failed", "user_id", userID, "error", err)
		return withMeaning(seeker)
	}
	if !ok {
		return withMeaning(seeker)
	}
	if len(stored.StarseedOrigins) > 0 {
		seeker.Starseeds = stored.StarseedOrigins
	}
	if stored.LifePathNumber > 0 {
		seeker.LifePathNumber = stored.LifePathNumber
	}
	if len(stored.PersonalSpiritGuides) > 0 {
		seeker.GuideName = stored.PersonalSpiritGuides[0]
	}
	if stored.SoulContract != "" {
		seeker.SoulMission = stored.SoulContract
	}
	if stored.AkashicAccessLevel != "" {
		seeker.AkashicAccess = stored.AkashicAccessLevel
	}
	return withMeaning(seeker)
}

func withMeaning(seeker seekerContext) seekerContext {
	if seeker.LifePathNumber > 0 {
		seeker.LifePathMeaning = numerology.LifePathMeaning(seeker.LifePathNumber)
	}
	return seeker
}

func (s *service) usageFor(reported *chatgpt.Usage, systemPrompt, message, reply string) metrics.TokenUsage {
	if reported != nil {
		usage := metrics.TokenUsage{
			PromptTokens:     reported.PromptTokens,
			CompletionTokens: reported.CompletionTokens,
			TotalTokens:      reported.TotalTokens,
		}.Normalize()
		if !usage.IsZero() {
			return usage
		}
	}
	if s.deps.Tokens == nil {
		return metrics.TokenUsage{}
	}
	return metrics.TokenUsage{
		PromptTokens:     s.deps.Tokens.CountTokens(systemPrompt) + s.deps.Tokens.CountTokens(message),
		CompletionTokens: s.deps.Tokens.CountTokens(reply),
		Estimated:        true,
	}.Normalize()
}
