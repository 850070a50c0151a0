package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/scoring"
	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/retry"
)

const llmSystemPrompt = `You are a sales intelligence assistant for an enterprise AI platform vendor.
Given a company's AI readiness assessment, produce outreach recommendations.
Respond with a single JSON object with keys "approach" (string), "messaging" (string),
"talking_points" (array of strings, max 5) and "next_steps" (array of strings, max 4).
Be specific to the signals provided. No markdown, JSON only.`

// LLMClient generates tailored recommendations via chat completion. Calls go
// through a circuit breaker and retry; callers fall back to templates when an
// error comes back.
type LLMClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	cb          *gobreaker.CircuitBreaker
	retryConfig retry.Config
	onUsage     func(totalTokens int)
}

func NewLLMClient(apiKey, model string, temperature float32, maxTokens int, timeout time.Duration) *LLMClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm",
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	retryConfig := retry.Config{
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		Logger:         logger.GetLogger(),
	}

	logger.Info("LLM client initialized", zap.String("model", model))

	return &LLMClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		cb:          cb,
		retryConfig: retryConfig,
	}
}

// OnUsage registers a token-usage callback, used for metrics.
func (c *LLMClient) OnUsage(fn func(totalTokens int)) { c.onUsage = fn }

type llmPayload struct {
	Approach      string   `json:"approach"`
	Messaging     string   `json:"messaging"`
	TalkingPoints []string `json:"talking_points"`
	NextSteps     []string `json:"next_steps"`
}

// Generate asks the model for recommendations grounded in the score
// breakdown and profile signals.
func (c *LLMClient) Generate(ctx context.Context, profile *domain.CompositeProfile, breakdown *domain.ScoreBreakdown, category string) (*domain.Recommendations, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	userPrompt := buildPrompt(profile, breakdown, category)

	var content string
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, retry.Do(ctx, c.retryConfig, func() error {
			resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: c.model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: llmSystemPrompt},
					{Role: openai.ChatMessageRoleUser, Content: userPrompt},
				},
				Temperature: c.temperature,
				MaxTokens:   c.maxTokens,
			})
			if err != nil {
				return fmt.Errorf("failed to create completion: %w", err)
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("completion returned no choices")
			}

			logger.Debug("LLM completion generated",
				zap.Int("prompt_tokens", resp.Usage.PromptTokens),
				zap.Int("completion_tokens", resp.Usage.CompletionTokens))
			if c.onUsage != nil {
				c.onUsage(resp.Usage.TotalTokens)
			}

			content = resp.Choices[0].Message.Content
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	var payload llmPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if payload.Approach == "" || len(payload.TalkingPoints) == 0 {
		return nil, fmt.Errorf("LLM response missing required fields")
	}

	return &domain.Recommendations{
		Approach:       payload.Approach,
		Messaging:      payload.Messaging,
		TalkingPoints:  payload.TalkingPoints,
		NextSteps:      payload.NextSteps,
		GeneratedByLLM: true,
	}, nil
}

func buildPrompt(profile *domain.CompositeProfile, breakdown *domain.ScoreBreakdown, category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\n", profile.Query.Name)
	if profile.Company != nil {
		fmt.Fprintf(&b, "Industry: %s, employees: %d\n", profile.Company.Industry, profile.Company.EmployeeCount)
	}
	fmt.Fprintf(&b, "AI readiness score: %.1f (%s, methodology %s, confidence %.2f)\n",
		breakdown.Total, category, breakdown.Methodology, breakdown.Confidence)

	b.WriteString("Component scores:\n")
	for _, name := range scoring.TopComponents(breakdown) {
		c := breakdown.Components[name]
		fmt.Fprintf(&b, "- %s: %.0f (weight %.2f, live data: %t)\n", name, c.Score, c.Weight, c.Live)
	}

	if profile.Jobs != nil {
		fmt.Fprintf(&b, "Hiring: %d AI/ML roles of %d postings, intensity %s\n",
			profile.Jobs.AIMLJobs, profile.Jobs.TotalJobs, profile.Jobs.HiringIntensity)
	}
	if profile.News != nil {
		fmt.Fprintf(&b, "News: %d AI-related of %d recent articles\n",
			profile.News.AIRelatedCount, profile.News.TotalArticles)
	}
	if profile.Website != nil && len(profile.Website.KeyInitiatives) > 0 {
		fmt.Fprintf(&b, "Site initiatives: %s\n", strings.Join(profile.Website.KeyInitiatives, "; "))
	}
	return b.String()
}

func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
