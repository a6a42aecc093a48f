package stylegen

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/plannerkit/pkg/cache"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/style"
)

func chatServer(t *testing.T, handler func(w http.ResponseWriter, req chatRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func reply(w http.ResponseWriter, content string) {
	var resp chatResponse
	resp.Choices = append(resp.Choices, struct {
		Message chatMessage `json:"message"`
	}{Message: chatMessage{Role: "assistant", Content: content}})
	_ = json.NewEncoder(w).Encode(resp)
}

func newTestOpenAI(t *testing.T, url string, opts ...OpenAIOption) *OpenAI {
	t.Helper()
	opts = append([]OpenAIOption{WithBaseURL(url), WithRetry(3, time.Millisecond)}, opts...)
	o, err := NewOpenAI("test-key", opts...)
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}
	return o
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI("  ")
	if !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
		t.Errorf("NewOpenAI(\"\") error = %v, want INVALID_CONFIG", err)
	}
}

func TestOpenAIGenerate(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, req chatRequest) {
		if req.Model != DefaultModel {
			t.Errorf("model = %q, want %q", req.Model, DefaultModel)
		}
		if req.Temperature != DefaultTemperature {
			t.Errorf("temperature = %v, want %v", req.Temperature, DefaultTemperature)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("messages = %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[0].Content, "collection_name") {
			t.Error("system instruction does not describe the bundle schema")
		}
		if want := "User style prompt: boho sunset"; req.Messages[1].Content != want {
			t.Errorf("user content = %q, want %q", req.Messages[1].Content, want)
		}
		reply(w, "```json\n{\"title\": \"Boho Week\", \"accent_color\": \"#C08552\"}\n```")
	})

	raw, err := newTestOpenAI(t, srv.URL).Generate(context.Background(), "  boho sunset ")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if raw[style.KeyTitle] != "Boho Week" {
		t.Errorf("title = %v, want Boho Week", raw[style.KeyTitle])
	}
}

func TestOpenAISurprisePrompt(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, req chatRequest) {
		if want := "User style prompt: " + SurprisePrompt; req.Messages[1].Content != want {
			t.Errorf("user content = %q, want %q", req.Messages[1].Content, want)
		}
		reply(w, "{}")
	})
	if _, err := newTestOpenAI(t, srv.URL).Generate(context.Background(), ""); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
}

func TestOpenAISingleVariant(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, req chatRequest) {
		if !strings.Contains(req.Messages[0].Content, `"days"`) {
			t.Error("single variant should ask for a days list")
		}
		reply(w, `{"days": ["Mon"]}`)
	})
	o := newTestOpenAI(t, srv.URL, WithVariant(style.VariantSingle), WithModel("gpt-test"), WithTemperature(0.5))
	if o.Model() != "gpt-test" || o.Temperature() != 0.5 {
		t.Errorf("Model/Temperature = %s/%v", o.Model(), o.Temperature())
	}
	if _, err := o.Generate(context.Background(), "x"); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
}

func TestOpenAIRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := chatServer(t, func(w http.ResponseWriter, req chatRequest) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		reply(w, `{"title": "ok"}`)
	})
	if _, err := newTestOpenAI(t, srv.URL).Generate(context.Background(), "x"); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestOpenAIErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  perrors.Code
		wantCalls int32
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error": {"message": "bad key"}}`, perrors.ErrCodeInvalidConfig, 1},
		{"rate limited", http.StatusTooManyRequests, `{}`, perrors.ErrCodeRateLimited, 3},
		{"bad request", http.StatusBadRequest, `{}`, perrors.ErrCodeStyleGeneration, 1},
		{"no choices", http.StatusOK, `{"choices": []}`, perrors.ErrCodeStyleGeneration, 1},
		{"not json", http.StatusOK, `<html>`, perrors.ErrCodeStyleGeneration, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := chatServer(t, func(w http.ResponseWriter, req chatRequest) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := newTestOpenAI(t, srv.URL).Generate(context.Background(), "x")
			if got := perrors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %v, want %v (err %v)", got, tt.wantCode, err)
			}
			if calls.Load() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestOpenAIInvalidContent(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, req chatRequest) {
		reply(w, "Here is your style: pastel!")
	})
	_, err := newTestOpenAI(t, srv.URL).Generate(context.Background(), "x")
	if !perrors.Is(err, perrors.ErrCodeStyleGeneration) {
		t.Errorf("Generate() error = %v, want STYLE_GENERATION", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}```", `{"a":1}`},
		{"  \n{\"a\":1}\n ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStaticReturnsCopies(t *testing.T) {
	s := NewStatic("default", style.DefaultBundle.Raw())
	a, _ := s.Generate(context.Background(), "ignored")
	a[style.KeyTitle] = "mutated"
	b, _ := s.Generate(context.Background(), "")
	if b[style.KeyTitle] != style.DefaultBundle.Title {
		t.Errorf("title = %v, want %v", b[style.KeyTitle], style.DefaultBundle.Title)
	}
	if Name(s) != "default" {
		t.Errorf("Name() = %q, want default", Name(s))
	}
}

func TestFallback(t *testing.T) {
	failing := Func(func(context.Context, string) (style.Raw, error) {
		return nil, errors.New("upstream down")
	})
	f := NewFallback(failing, NewStatic("default", style.Raw{style.KeyTitle: "fallback"}))

	raw, err := f.Generate(context.Background(), "x")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if raw[style.KeyTitle] != "fallback" {
		t.Errorf("title = %v, want fallback", raw[style.KeyTitle])
	}
	if Name(f) != "custom" {
		t.Errorf("Name() = %q, want custom", Name(f))
	}
}

func TestFallbackKeepsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failing := Func(func(ctx context.Context, _ string) (style.Raw, error) { return nil, ctx.Err() })
	f := NewFallback(failing, NewStatic("default", style.Raw{}))
	if _, err := f.Generate(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestCached(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var calls int
	inner := Func(func(_ context.Context, prompt string) (style.Raw, error) {
		calls++
		return style.Raw{style.KeyTitle: prompt}, nil
	})
	c := NewCached(inner, fc, WithTTL(time.Hour))
	ctx := context.Background()

	for range 3 {
		raw, err := c.Generate(ctx, "retro")
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if raw[style.KeyTitle] != "retro" {
			t.Errorf("title = %v, want retro", raw[style.KeyTitle])
		}
	}
	if calls != 1 {
		t.Errorf("inner calls = %d, want 1", calls)
	}

	// surprise-me requests are never cached
	_, _ = c.Generate(ctx, "")
	_, _ = c.Generate(ctx, "  ")
	if calls != 3 {
		t.Errorf("inner calls = %d, want 3", calls)
	}
}

func TestCachedModelKey(t *testing.T) {
	fc, _ := cache.NewFileCache(t.TempDir())
	var calls int
	inner := Func(func(context.Context, string) (style.Raw, error) {
		calls++
		return style.Raw{}, nil
	})
	ctx := context.Background()
	_, _ = NewCached(inner, fc, WithModelKey("a", 0.9, style.VariantBundle)).Generate(ctx, "p")
	_, _ = NewCached(inner, fc, WithModelKey("b", 0.9, style.VariantBundle)).Generate(ctx, "p")
	if calls != 2 {
		t.Errorf("inner calls = %d, want 2 (different models share no entries)", calls)
	}
}

func TestCachedDoesNotStoreErrors(t *testing.T) {
	var calls int
	inner := Func(func(context.Context, string) (style.Raw, error) {
		calls++
		return nil, errors.New("fail")
	})
	fc, _ := cache.NewFileCache(t.TempDir())
	c := NewCached(inner, fc)
	for range 2 {
		if _, err := c.Generate(context.Background(), "p"); err == nil {
			t.Error("Generate() error = nil, want error")
		}
	}
	if calls != 2 {
		t.Errorf("inner calls = %d, want 2", calls)
	}
}
