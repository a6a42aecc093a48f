package stylegen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/buildinfo"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/httputil"
	"github.com/matzehuels/plannerkit/pkg/observability"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// Defaults of the OpenAI generator.
const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.95
	DefaultTimeout     = 60 * time.Second
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// OpenAI generates styles through the chat completions API.
type OpenAI struct {
	http        *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	variant     style.Variant
	attempts    int
	backoff     time.Duration
	logger      *log.Logger
}

// OpenAIOption configures an OpenAI generator.
type OpenAIOption func(*OpenAI)

// WithBaseURL points the client at a compatible endpoint.
func WithBaseURL(u string) OpenAIOption {
	return func(o *OpenAI) {
		if u != "" {
			o.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithModel overrides the model name.
func WithModel(m string) OpenAIOption {
	return func(o *OpenAI) {
		if m != "" {
			o.model = m
		}
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) OpenAIOption {
	return func(o *OpenAI) { o.temperature = t }
}

// WithVariant selects which style shape the model is asked for.
func WithVariant(v style.Variant) OpenAIOption {
	return func(o *OpenAI) { o.variant = v }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) OpenAIOption {
	return func(o *OpenAI) {
		if c != nil {
			o.http = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(o *OpenAI) {
		if d > 0 {
			o.http.Timeout = d
		}
	}
}

// WithRetry sets the attempt count and initial backoff for transient
// failures.
func WithRetry(attempts int, backoff time.Duration) OpenAIOption {
	return func(o *OpenAI) {
		o.attempts = attempts
		o.backoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) OpenAIOption {
	return func(o *OpenAI) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewOpenAI returns a generator authenticated with apiKey.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "OpenAI API key is not set")
	}
	o := &OpenAI{
		http:        &http.Client{Timeout: DefaultTimeout},
		baseURL:     DefaultBaseURL,
		apiKey:      apiKey,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		attempts:    3,
		backoff:     time.Second,
		logger:      log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Name implements Namer.
func (o *OpenAI) Name() string { return "openai" }

// Model returns the configured model name.
func (o *OpenAI) Model() string { return o.model }

// Temperature returns the configured sampling temperature.
func (o *OpenAI) Temperature() float64 { return o.temperature }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate implements Generator.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (style.Raw, error) {
	body, err := json.Marshal(chatRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []chatMessage{
			{Role: "system", Content: instruction(o.variant)},
			{Role: "user", Content: userContent(prompt)},
		},
	})
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "encode chat request")
	}

	var content string
	err = httputil.Retry(ctx, o.attempts, o.backoff, func() error {
		var err error
		content, err = o.complete(ctx, body)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, perrors.Wrap(perrors.ErrCodeTimeout, ctx.Err(), "style generation cancelled")
		}
		if perrors.GetCode(err) != "" {
			return nil, err
		}
		return nil, perrors.Wrap(perrors.ErrCodeStyleGeneration, err, "style generation failed")
	}

	raw, err := style.Decode([]byte(stripFences(content)))
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeStyleGeneration, err, "model returned an invalid style")
	}
	o.logger.Debug("style generated", "model", o.model, "keys", len(raw))
	return raw, nil
}

func (o *OpenAI) complete(ctx context.Context, body []byte) (string, error) {
	endpoint := o.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "invalid base URL %q", o.baseURL)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := o.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return "", &httputil.RetryableError{Err: perrors.Wrap(perrors.ErrCodeNetwork, err, "request to %s failed", host)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &httputil.RetryableError{Err: perrors.Wrap(perrors.ErrCodeNetwork, err, "read response")}
	}

	var cr chatResponse
	decodeErr := json.Unmarshal(data, &cr)

	if resp.StatusCode != http.StatusOK {
		return "", o.statusError(resp, &cr)
	}
	if decodeErr != nil {
		return "", perrors.Wrap(perrors.ErrCodeStyleGeneration, decodeErr, "decode chat response")
	}
	if len(cr.Choices) == 0 {
		return "", perrors.New(perrors.ErrCodeStyleGeneration, "chat response has no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

func (o *OpenAI) statusError(resp *http.Response, cr *chatResponse) error {
	msg := http.StatusText(resp.StatusCode)
	if cr.Error != nil && cr.Error.Message != "" {
		msg = cr.Error.Message
	}
	o.logger.Debug("chat completion rejected", "status", resp.StatusCode, "message", msg)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &httputil.RetryableError{
			Err:   perrors.New(perrors.ErrCodeRateLimited, "rate limited: %s", msg),
			After: httputil.RetryAfter(resp.Header),
		}
	case httputil.RetryableStatus(resp.StatusCode):
		return &httputil.RetryableError{Err: perrors.New(perrors.ErrCodeNetwork, "status %d: %s", resp.StatusCode, msg)}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return perrors.New(perrors.ErrCodeInvalidConfig, "OpenAI rejected the API key: %s", msg)
	default:
		return perrors.New(perrors.ErrCodeStyleGeneration, "status %d: %s", resp.StatusCode, msg)
	}
}
