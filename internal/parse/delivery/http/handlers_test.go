package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-nlp-service/internal/model"
	"task-nlp-service/internal/parse"
	"task-nlp-service/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type mockUseCase struct {
	output parse.ParseOutput
	err    error
	got    parse.ParseInput
}

func (m *mockUseCase) Parse(ctx context.Context, input parse.ParseInput) (parse.ParseOutput, error) {
	m.got = input
	return m.output, m.err
}

func performParse(t *testing.T, uc parse.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(&mockLogger{}, uc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Parse(c)
	return w
}

func TestParseHandler(t *testing.T) {
	start := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("valid request", func(t *testing.T) {
		uc := &mockUseCase{output: parse.ParseOutput{
			Record: model.TaskRecord{
				Task:      "họp với khách",
				Priority:  4,
				StartTime: start,
				EndTime:   &start,
				Person:    "Tôi",
			},
		}}

		w := performParse(t, uc, `{"text": "họp với khách ngày mai 10h"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
		}
		if uc.got.RawText != "họp với khách ngày mai 10h" {
			t.Errorf("raw text passed to usecase = %q", uc.got.RawText)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected data payload: %v", resp.Data)
		}
		if data["task"] != "họp với khách" {
			t.Errorf("task = %v, want %q", data["task"], "họp với khách")
		}
		if data["startTime"] != start.Format(time.RFC3339) {
			t.Errorf("startTime = %v, want %s", data["startTime"], start.Format(time.RFC3339))
		}
	})

	t.Run("now override is forwarded", func(t *testing.T) {
		uc := &mockUseCase{output: parse.ParseOutput{
			Record: model.TaskRecord{Task: "họp", Priority: 3, StartTime: start, Person: "Tôi"},
		}}

		w := performParse(t, uc, `{"text": "họp", "now": "2024-01-01T08:00:00Z"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if uc.got.Now == nil {
			t.Fatalf("Now was not forwarded to the usecase")
		}
		want := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		if !uc.got.Now.Equal(want) {
			t.Errorf("Now = %v, want %v", uc.got.Now, want)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		w := performParse(t, &mockUseCase{}, `{}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("bad now format", func(t *testing.T) {
		w := performParse(t, &mockUseCase{}, `{"text": "họp", "now": "yesterday"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := performParse(t, &mockUseCase{}, `{not json`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("usecase empty input error", func(t *testing.T) {
		w := performParse(t, &mockUseCase{err: parse.ErrEmptyInput}, `{"text": "   "}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
