package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learnpath/ent"
	"github.com/abhisek/learnpath/ent/oraclerequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OracleRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save oracle request event: %w", err)
	}

	return nil
}

func (r *eventRepo) ListOracleRequests(ctx context.Context, opts QueryOpts) ([]*OracleRequestEvent, error) {
	q := r.client.OracleRequestEvent.Query().
		Order(ent.Desc(oraclerequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(oraclerequestevent.SequenceGT(opts.After))
	}
	if opts.Purpose != "" {
		q = q.Where(oraclerequestevent.Purpose(opts.Purpose))
	}
	if opts.Provider != "" {
		q = q.Where(oraclerequestevent.Provider(opts.Provider))
	}
	if !opts.From.IsZero() {
		q = q.Where(oraclerequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(oraclerequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list oracle events: %w", err)
	}

	out := make([]*OracleRequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, &OracleRequestEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			OracleRequestEventData: OracleRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
				RequestBody:  row.RequestBody,
				ResponseBody: row.ResponseBody,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) GetOracleRequest(ctx context.Context, sequence int64) (*OracleRequestEvent, error) {
	row, err := r.client.OracleRequestEvent.Query().
		Where(oraclerequestevent.Sequence(sequence)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get oracle event %d: %w", sequence, err)
	}

	return &OracleRequestEvent{
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		OracleRequestEventData: OracleRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}, nil
}

func (r *eventRepo) OracleUsage(ctx context.Context, opts QueryOpts) (*OracleUsage, error) {
	// Aggregation happens in Go: the event volume is tiny (one row per
	// oracle call) and ent group-by over five sums reads worse.
	opts.Limit = 0
	events, err := r.ListOracleRequests(ctx, opts)
	if err != nil {
		return nil, err
	}

	usage := &OracleUsage{ByModel: make(map[string]ModelUsage)}
	for _, e := range events {
		usage.Requests++
		if !e.Success {
			usage.Failures++
		}
		usage.InputTokens += e.InputTokens
		usage.OutputTokens += e.OutputTokens

		m := usage.ByModel[e.Model]
		m.Requests++
		m.InputTokens += e.InputTokens
		m.OutputTokens += e.OutputTokens
		usage.ByModel[e.Model] = m
	}
	return usage, nil
}

func (r *eventRepo) AppendBehavior(ctx context.Context, data BehaviorEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BehaviorEvent.Create().
		SetSequence(seqNum).
		SetOwnerID(data.OwnerID).
		SetKind(data.Kind).
		SetUnitID(data.UnitID).
		SetDetail(data.Detail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save behavior event: %w", err)
	}

	return nil
}
