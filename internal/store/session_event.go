package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var sessionColumns = []string{
	"session_id", "operation", "level", "questions_served",
	"correct_answers", "best_streak", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	return r.insert(ctx, sessionEventsTable, sessionColumns, []any{
		data.SessionID, data.Operation, data.Level, data.QuestionsServed,
		data.CorrectAnswers, data.BestStreak, data.DurationSecs,
	})
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := selectEvents(sessionEventsTable, opts, sessionColumns...)

	var records []SessionSummaryRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec SessionSummaryRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Operation, &rec.Level,
			&rec.QuestionsServed, &rec.CorrectAnswers, &rec.BestStreak, &rec.DurationSecs); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return records, nil
}
