package sheet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/singleflight"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"climbreg/internal/sheet/metrics"
)

const tracerName = "climbreg/internal/sheet"

// Connector opens an authorized Sheets API client.
type Connector func(ctx context.Context) (*sheets.Service, error)

// ServiceAccount returns a Connector that authorizes with a service account
// key (the JSON file downloaded from the cloud console). The token is
// fetched once up front so bad credentials fail at connect time.
func ServiceAccount(credentialsJSON []byte) Connector {
	return func(ctx context.Context) (*sheets.Service, error) {
		cfg, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("parse service account key: %w", err)
		}
		// The token source outlives the request that happened to connect.
		ts := cfg.TokenSource(context.WithoutCancel(ctx))
		if _, err := ts.Token(); err != nil {
			return nil, fmt.Errorf("authorize service account: %w", err)
		}
		return sheets.NewService(ctx, option.WithTokenSource(ts))
	}
}

// ConnectionProvider hands out one shared Sheets client, connecting lazily on
// first use. Construct it once at process start and pass it to GoogleAccess.
// A failed connect is not cached; the next caller tries again.
type ConnectionProvider struct {
	connect Connector
	metrics *metrics.Metrics

	group singleflight.Group
	mu    sync.RWMutex
	svc   *sheets.Service
}

// NewConnectionProvider wraps connect. metrics may be nil.
func NewConnectionProvider(connect Connector, m *metrics.Metrics) *ConnectionProvider {
	return &ConnectionProvider{connect: connect, metrics: m}
}

// Service returns the cached client, connecting first if needed. Concurrent
// first callers share a single connect attempt. A caller whose ctx ends
// stops waiting but does not abort the shared attempt.
func (p *ConnectionProvider) Service(ctx context.Context) (*sheets.Service, error) {
	if svc := p.cached(); svc != nil {
		return svc, nil
	}

	// the client keeps the connect ctx for token refreshes, so it must
	// outlive the caller that happened to trigger the connect
	connectCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan("connect", func() (any, error) {
		if svc := p.cached(); svc != nil {
			return svc, nil
		}
		svc, err := p.connect(connectCtx)
		if err != nil {
			p.recordConnect(metrics.OutcomeError)
			return nil, err
		}
		p.recordConnect(metrics.OutcomeOK)
		p.mu.Lock()
		p.svc = svc
		p.mu.Unlock()
		return svc, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, remoteAccess("connect to spreadsheet", res.Err)
		}
		return res.Val.(*sheets.Service), nil
	case <-ctx.Done():
		return nil, remoteAccess("connect to spreadsheet", ctx.Err())
	}
}

func (p *ConnectionProvider) cached() *sheets.Service {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.svc
}

func (p *ConnectionProvider) recordConnect(outcome string) {
	p.metrics.IncrementConnects(outcome)
}

// GoogleAccess implements Access on top of the Sheets v4 values API.
type GoogleAccess struct {
	conn          *ConnectionProvider
	spreadsheetID string
	metrics       *metrics.Metrics
	tracer        trace.Tracer
}

type GoogleOption func(*GoogleAccess)

// WithMetrics records per-call counters and latencies.
func WithMetrics(m *metrics.Metrics) GoogleOption {
	return func(a *GoogleAccess) {
		a.metrics = m
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) GoogleOption {
	return func(a *GoogleAccess) {
		if tp != nil {
			a.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewGoogleAccess returns an Access for one spreadsheet.
func NewGoogleAccess(conn *ConnectionProvider, spreadsheetID string, opts ...GoogleOption) (*GoogleAccess, error) {
	if conn == nil {
		return nil, fmt.Errorf("connection provider is required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	a := &GoogleAccess{
		conn:          conn,
		spreadsheetID: spreadsheetID,
		tracer:        otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *GoogleAccess) GetRange(ctx context.Context, rng string) (rows [][]string, err error) {
	ctx, done := a.observe(ctx, "get", rng)
	defer func() { done(err) }()

	svc, err := a.conn.Service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := svc.Spreadsheets.Values.Get(a.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, remoteAccess("read "+rng, err)
	}
	return textRows(rng, resp.Values)
}

func (a *GoogleAccess) UpdateRange(ctx context.Context, rng string, patch Patch) (err error) {
	ctx, done := a.observe(ctx, "update", rng)
	defer func() { done(err) }()

	svc, err := a.conn.Service(ctx)
	if err != nil {
		return err
	}
	body := &sheets.ValueRange{Values: [][]interface{}{patchValues(patch)}}
	_, err = svc.Spreadsheets.Values.Update(a.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return remoteAccess("update "+rng, err)
	}
	return nil
}

func (a *GoogleAccess) AppendRow(ctx context.Context, table string, patch Patch) (err error) {
	ctx, done := a.observe(ctx, "append", table)
	defer func() { done(err) }()

	svc, err := a.conn.Service(ctx)
	if err != nil {
		return err
	}
	body := &sheets.ValueRange{Values: [][]interface{}{patchValues(patch)}}
	_, err = svc.Spreadsheets.Values.Append(a.spreadsheetID, TableRange(table), body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return remoteAccess("append "+table, err)
	}
	return nil
}

// observe opens a span for one remote call and returns the function that
// closes it and records metrics.
func (a *GoogleAccess) observe(ctx context.Context, op, rng string) (context.Context, func(error)) {
	start := time.Now()
	table, _, parseErr := ParseRange(rng)
	if parseErr != nil {
		table = rng
	}
	ctx, span := a.tracer.Start(ctx, "sheet."+op, trace.WithAttributes(
		attribute.String("sheet.range", rng),
		attribute.String("sheet.table", table),
	))

	return ctx, func(err error) {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
			if errors.Is(err, ErrSchemaViolation) {
				outcome = metrics.OutcomeSchema
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		a.metrics.ObserveRequest(op, table, outcome, time.Since(start))
	}
}

// textRows converts API values into text, rejecting any non-string cell.
func textRows(rng string, values [][]interface{}) ([][]string, error) {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			s, ok := cell.(string)
			if !ok {
				return nil, schemaViolation(rng, "cell at row %d column %d is %T, not text", i+1, j+1, cell)
			}
			rows[i][j] = s
		}
	}
	return rows, nil
}

// patchValues leaves nil cells as JSON nulls, which the API skips.
func patchValues(patch Patch) []interface{} {
	values := make([]interface{}, len(patch))
	for i, cell := range patch {
		if cell != nil {
			values[i] = *cell
		}
	}
	return values
}
