package store

import (
	"context"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error {
	concepts := data.Concepts
	if concepts == nil {
		concepts = []string{}
	}
	encoded, err := json.Marshal(concepts)
	if err != nil {
		return fmt.Errorf("encode concepts: %w", err)
	}

	return r.insert(ctx, challengeEventsTable,
		[]string{"challenge_date", "challenge_type", "total_questions", "concepts", "payload"},
		[]any{data.Date, data.ChallengeType, data.TotalQuestions, string(encoded), data.Payload},
	)
}

func (r *eventRepo) QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error) {
	sel := selectEvents(challengeEventsTable, opts,
		"challenge_date", "challenge_type", "total_questions", "concepts", "payload")

	var records []ChallengeEventRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec      ChallengeEventRecord
			ts       int64
			concepts string
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.Date, &rec.ChallengeType,
			&rec.TotalQuestions, &concepts, &rec.Payload); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(concepts), &rec.Concepts); err != nil {
			return fmt.Errorf("decode concepts of event %d: %w", rec.Sequence, err)
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query challenge events: %w", err)
	}
	return records, nil
}
