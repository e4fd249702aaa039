package usecase

import (
	"context"
	"strings"
	"time"

	"task-nlp-service/internal/model"
	"task-nlp-service/internal/parse"
	"task-nlp-service/pkg/ner"
	"task-nlp-service/pkg/priority"
)

// Parse converts one free-form Vietnamese task description into a
// structured task record: entity spans, priority, absolute time window.
func (uc *implUseCase) Parse(ctx context.Context, input parse.ParseInput) (parse.ParseOutput, error) {
	raw := strings.TrimSpace(input.RawText)
	if raw == "" {
		return parse.ParseOutput{}, parse.ErrEmptyInput
	}

	now := time.Now().In(uc.resolver.Location())
	if input.Now != nil {
		now = input.Now.In(uc.resolver.Location())
	}

	ents := uc.extractEntities(ctx, raw)

	taskText := ents.Task
	if taskText == "" {
		taskText = raw
	}
	person := ents.Person
	if person == "" {
		person = model.DefaultPerson
	}

	rng := uc.resolver.Resolve(timePhrase(ents, raw), now)

	record := model.TaskRecord{
		Task:            taskText,
		Priority:        priority.Detect(raw),
		StartTime:       *rng.StartTime,
		EndTime:         rng.EndTime,
		Person:          person,
		IsDaily:         isDaily(raw),
		DurationMinutes: rng.DurationMinutes,
	}

	uc.l.Infof(ctx, "Parse: task=%q priority=%d start=%s daily=%t",
		record.Task, record.Priority, record.StartTime.Format(time.RFC3339), record.IsDaily)

	var calendarLink string
	if input.CreateCalendarEvent {
		calendarLink = uc.tryCreateCalendarEvent(ctx, record)
	}

	return parse.ParseOutput{Record: record, CalendarLink: calendarLink}, nil
}

// extractEntities asks the recognizer for labeled spans, memoizing per
// text. Recognizer loss is not a parse failure: the whole text falls back
// to being the task description.
func (uc *implUseCase) extractEntities(ctx context.Context, raw string) ner.Entities {
	if cached, ok := uc.entityCache.Get(raw); ok {
		return cached
	}

	if uc.recognizer == nil {
		return ner.Entities{}
	}

	ents, err := uc.recognizer.Extract(ctx, raw)
	if err != nil {
		uc.l.Warnf(ctx, "Parse: NER extraction failed, falling back to raw text: %v", err)
		return ner.Entities{}
	}

	uc.entityCache.Add(raw, ents)
	return ents
}
