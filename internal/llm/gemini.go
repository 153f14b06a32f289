package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements Client using the Google GenAI SDK.
type geminiClient struct {
	client   *genai.Client
	cfg      Config
	observer Observer
}

// NewGeminiClient creates a Client backed by the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini provider requires an API key")
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	if cfg.Model == "" || cfg.Model == DefaultConfig().Model {
		cfg.Model = "gemini-2.0-flash"
	}
	return &geminiClient{client: client, cfg: cfg, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temp)),
		MaxOutputTokens: int32(maxTok),
	}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.UserPrompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, genCfg)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observer.OnCallComplete(CallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return &GenerateResponse{
		Text:      result.Text(),
		Model:     c.cfg.Model,
		LatencyMs: latency,
	}, nil
}

// Available reports whether the API accepts a minimal request. The SDK
// has no ping endpoint, so a cheap generation probe is used.
func (c *geminiClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := c.client.Models.GenerateContent(ctx, c.cfg.Model,
		[]*genai.Content{genai.NewContentFromText("ping", genai.RoleUser)},
		&genai.GenerateContentConfig{MaxOutputTokens: 1})
	return err == nil
}
