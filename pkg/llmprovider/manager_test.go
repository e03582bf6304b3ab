package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitops-manager/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeProvider struct {
	name     string
	failures int // number of calls that fail before succeeding
	calls    int
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, errors.New("transient failure")
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "model", Parts: []llmprovider.Part{{Text: "ok from " + p.name}}},
		ProviderName: p.name,
		Usage:        &llmprovider.Usage{TotalTokens: 1},
	}, nil
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return "fake-model" }

func managerConfig() *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestManagerSuccess(t *testing.T) {
	p := &fakeProvider{name: "primary"}
	m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content.Parts[0].Text != "ok from primary" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestManagerRetriesThenSucceeds(t *testing.T) {
	p := &fakeProvider{name: "flaky", failures: 1}
	m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if p.calls != 2 {
		t.Errorf("expected 2 calls, got %d", p.calls)
	}
}

func TestManagerFallsBackToSecondProvider(t *testing.T) {
	primary := &fakeProvider{name: "primary", failures: 10}
	secondary := &fakeProvider{name: "secondary"}
	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, managerConfig(), &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected fallback to secondary, got %q", resp.ProviderName)
	}
}

func TestManagerAllFail(t *testing.T) {
	p := &fakeProvider{name: "doomed", failures: 100}
	m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	primary := &fakeProvider{name: "primary", failures: 100}
	secondary := &fakeProvider{name: "secondary"}
	cfg := managerConfig()
	cfg.FallbackEnabled = false
	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err == nil {
		t.Fatalf("expected failure with fallback disabled")
	}
	if secondary.calls != 0 {
		t.Errorf("secondary must not be called when fallback is disabled")
	}
}

func TestManagerNoProviders(t *testing.T) {
	m := llmprovider.NewManager(nil, managerConfig(), &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}
