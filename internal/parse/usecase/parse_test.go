package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"task-nlp-service/internal/model"
	"task-nlp-service/internal/parse"
	"task-nlp-service/internal/parse/usecase"
	"task-nlp-service/pkg/gcalendar"
	"task-nlp-service/pkg/ner"
	"task-nlp-service/pkg/vitime"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

type mockRecognizer struct {
	entities ner.Entities
	err      error
	calls    int
}

func (m *mockRecognizer) Extract(ctx context.Context, text string) (ner.Entities, error) {
	m.calls++
	return m.entities, m.err
}

func newUseCase(t *testing.T, recognizer ner.Recognizer) parse.UseCase {
	t.Helper()
	resolver, err := vitime.NewResolver("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return usecase.New(&mockLogger{}, recognizer, resolver, nil, "", 0, 0)
}

func TestParse(t *testing.T) {
	// Monday, January 1, 2024, 08:00
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("full recognizer output", func(t *testing.T) {
		rec := &mockRecognizer{entities: ner.Entities{
			Task:   "họp với khách",
			Date:   "ngày mai",
			Time:   "10h",
			Person: "Lan",
		}}
		uc := newUseCase(t, rec)

		out, err := uc.Parse(context.Background(), parse.ParseInput{
			RawText: "họp với khách ngày mai 10h",
			Now:     &now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Record.Task != "họp với khách" {
			t.Errorf("Task = %q, want %q", out.Record.Task, "họp với khách")
		}
		if out.Record.Person != "Lan" {
			t.Errorf("Person = %q, want %q", out.Record.Person, "Lan")
		}
		want := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
		if !out.Record.StartTime.Equal(want) {
			t.Errorf("StartTime = %v, want %v", out.Record.StartTime, want)
		}
		if out.Record.IsDaily {
			t.Errorf("IsDaily = true, want false")
		}
		if out.CalendarLink != "" {
			t.Errorf("CalendarLink = %q, want empty without a calendar client", out.CalendarLink)
		}
	})

	t.Run("missing spans fall back to raw text and default person", func(t *testing.T) {
		rec := &mockRecognizer{entities: ner.Entities{}}
		uc := newUseCase(t, rec)

		out, err := uc.Parse(context.Background(), parse.ParseInput{
			RawText: "mua sữa",
			Now:     &now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Record.Task != "mua sữa" {
			t.Errorf("Task = %q, want raw text fallback", out.Record.Task)
		}
		if out.Record.Person != model.DefaultPerson {
			t.Errorf("Person = %q, want %q", out.Record.Person, model.DefaultPerson)
		}
		want := now.Add(30 * time.Minute)
		if !out.Record.StartTime.Equal(want) {
			t.Errorf("StartTime = %v, want %v", out.Record.StartTime, want)
		}
		if out.Record.Priority != 3 {
			t.Errorf("Priority = %d, want 3", out.Record.Priority)
		}
	})

	t.Run("recognizer failure degrades to raw text", func(t *testing.T) {
		rec := &mockRecognizer{err: errors.New("model unavailable")}
		uc := newUseCase(t, rec)

		out, err := uc.Parse(context.Background(), parse.ParseInput{
			RawText: "gấp: nộp báo cáo hôm nay 10h",
			Now:     &now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Record.Task != "gấp: nộp báo cáo hôm nay 10h" {
			t.Errorf("Task = %q, want raw text fallback", out.Record.Task)
		}
		if out.Record.Priority != 5 {
			t.Errorf("Priority = %d, want 5", out.Record.Priority)
		}
		want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		if !out.Record.StartTime.Equal(want) {
			t.Errorf("StartTime = %v, want %v", out.Record.StartTime, want)
		}
	})

	t.Run("nil recognizer still parses", func(t *testing.T) {
		uc := newUseCase(t, nil)

		out, err := uc.Parse(context.Background(), parse.ParseInput{
			RawText: "tưới cây mỗi sáng",
			Now:     &now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Record.IsDaily {
			t.Errorf("IsDaily = false, want true for recurring cue")
		}
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		uc := newUseCase(t, &mockRecognizer{})

		_, err := uc.Parse(context.Background(), parse.ParseInput{RawText: "   "})
		if !errors.Is(err, parse.ErrEmptyInput) {
			t.Fatalf("err = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("repeated text hits the entity cache", func(t *testing.T) {
		rec := &mockRecognizer{entities: ner.Entities{Task: "họp", Date: "mai"}}
		uc := newUseCase(t, rec)

		for i := 0; i < 3; i++ {
			if _, err := uc.Parse(context.Background(), parse.ParseInput{
				RawText: "họp mai",
				Now:     &now,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if rec.calls != 1 {
			t.Errorf("recognizer calls = %d, want 1 (cached)", rec.calls)
		}
	})

	t.Run("calendar event targets the configured calendar", func(t *testing.T) {
		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: tsClient.Transport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}

		calendarClient, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resolver, _ := vitime.NewResolver("UTC")
		uc := usecase.New(&mockLogger{}, nil, resolver, calendarClient, "work-calendar", 0, 0)

		out, err := uc.Parse(context.Background(), parse.ParseInput{
			RawText:             "họp sáng mai",
			Now:                 &now,
			CreateCalendarEvent: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(gotPath, "/calendars/work-calendar/events") {
			t.Errorf("event created at %q, want the configured calendar", gotPath)
		}
		if out.CalendarLink != "https://calendar.google.com/event-uri" {
			t.Errorf("CalendarLink = %q", out.CalendarLink)
		}
	})

	t.Run("same input and reference is idempotent", func(t *testing.T) {
		uc := newUseCase(t, nil)

		first, err := uc.Parse(context.Background(), parse.ParseInput{RawText: "họp sáng mai", Now: &now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Parse(context.Background(), parse.ParseInput{RawText: "họp sáng mai", Now: &now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.Record.StartTime.Equal(second.Record.StartTime) {
			t.Errorf("StartTime differs between identical parses: %v vs %v",
				first.Record.StartTime, second.Record.StartTime)
		}
		if first.Record.Priority != second.Record.Priority {
			t.Errorf("Priority differs between identical parses: %d vs %d",
				first.Record.Priority, second.Record.Priority)
		}
	})
}
