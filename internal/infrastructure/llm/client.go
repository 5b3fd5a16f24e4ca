package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lawalalx/foodplan/internal/domain"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	// Generation providers commonly allow 30 requests per minute on the free
	// tier; 0.5 req/s with a small burst stays under that.
	defaultRequestsPerSecond = 0.5
)

// Config holds configuration for the generation-service client.
type Config struct {
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
}

// Client talks to an OpenAI-compatible chat-completions endpoint and turns its
// free-text answers into schema-validated meal plans and ingredient lists.
// Transport failures and malformed outputs are retried with linear backoff up
// to MaxRetries, then surfaced as a terminal error.
type Client struct {
	http        *resty.Client
	model       string
	maxRetries  int
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new generation-service client.
func NewClient(config Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxRetries := config.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", config.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:        httpClient,
		model:       config.Model,
		maxRetries:  maxRetries,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 5),
		logger:      logger,
	}
}

// chatRequest is the chat-completions payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat-completions response we consume.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateMealPlan asks the generation service for a duration-long plan and
// validates the response shape (day -> slot -> meal name).
func (c *Client) GenerateMealPlan(ctx context.Context, req *domain.PlanRequest) (domain.PlanDays, error) {
	prompt := mealPlanPrompt(req)

	var days domain.PlanDays
	err := c.withRetries(ctx, "meal plan", func() error {
		content, err := c.complete(ctx, mealPlanSystemPrompt, prompt)
		if err != nil {
			return err
		}
		parsed, err := ParseMealPlan(content)
		if err != nil {
			return err
		}
		days = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

// GenerateIngredients asks the generation service for a meal's ingredient list
// sized for the household, and validates each entry.
func (c *Client) GenerateIngredients(ctx context.Context, mealName string, householdSize int) ([]domain.IngredientRequest, error) {
	prompt := ingredientsPrompt(mealName, householdSize)

	var ingredients []domain.IngredientRequest
	err := c.withRetries(ctx, "ingredients", func() error {
		content, err := c.complete(ctx, ingredientsSystemPrompt, prompt)
		if err != nil {
			return err
		}
		parsed, err := ParseIngredients(content)
		if err != nil {
			return err
		}
		ingredients = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// withRetries runs fn up to maxRetries times with linear backoff, retrying on
// transport errors and malformed output alike.
func (c *Client) withRetries(ctx context.Context, operation string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.Warn("generation attempt failed",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}
	}

	if errors.Is(lastErr, domain.ErrMalformedGenerationOutput) {
		return lastErr
	}
	return fmt.Errorf("%w: %v", domain.ErrGenerationFailure, lastErr)
}

// complete performs one chat-completions call and returns the message content.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	var parsed chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&parsed).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("generation request: status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", domain.ErrMalformedGenerationOutput)
	}
	return parsed.Choices[0].Message.Content, nil
}
