package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/joestump/listing-writer/internal/api"
	"github.com/joestump/listing-writer/internal/listing"
	"github.com/joestump/listing-writer/internal/llm"
)

// testEnv holds the router under test and the captured log entries.
type testEnv struct {
	Router http.Handler
	Logs   *observer.ObservedLogs
}

// newTestEnv wires the full router around gen with an observing logger.
func newTestEnv(t *testing.T, gen llm.Generator, origins ...string) *testEnv {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	router := api.NewRouter(api.Deps{
		Generator:    gen,
		Logger:       zap.New(core),
		AllowOrigins: origins,
	})
	return &testEnv{Router: router, Logs: logs}
}

// postGenerate sends body to POST /generate and returns the recorder.
func (env *testEnv) postGenerate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// stubGenerator returns a canned result and counts calls.
type stubGenerator struct {
	name    string
	content string
	err     error
	calls   int
}

func (s *stubGenerator) Name() string { return s.name }

func (s *stubGenerator) Generate(_ context.Context, _ *listing.Request) (string, error) {
	s.calls++
	return s.content, s.err
}

// stubCompleter stands in for the OpenAI client.
type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}
