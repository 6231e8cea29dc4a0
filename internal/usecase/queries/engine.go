package queries

import (
	"context"
	"math"
	"time"

	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Source is the store capability one list entity needs. Count and Select
// receive the same predicates so totals and pages agree.
type Source[T any] interface {
	Count(ctx context.Context, preds []Predicate) (int, error)
	Select(ctx context.Context, preds []Predicate, sort Sort, limit, offset int) ([]T, error)
}

type ListRequest struct {
	Page          int
	PageSize      int
	SortField     string
	SortDirection string
	Filters       map[string][]string
}

type Page[T any] struct {
	Rows       []T `json:"rows"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Map converts rows while keeping the page arithmetic.
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	out := &Page[U]{
		Rows:       make([]U, len(p.Rows)),
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
	for i, r := range p.Rows {
		out.Rows[i] = fn(r)
	}
	return out
}

type Engine struct {
	clock           clock.Clock
	timeout         time.Duration
	fanOut          int
	defaultPageSize int
	maxPageSize     int
	metrics         *metrics.Metrics
}

func NewEngine(cfg config.Config, clk clock.Clock, m *metrics.Metrics) *Engine {
	fanOut := cfg.Store.FanOut
	if fanOut < 1 {
		fanOut = 1
	}
	return &Engine{
		clock:           clk,
		timeout:         cfg.Store.Timeout,
		fanOut:          fanOut,
		defaultPageSize: cfg.Query.DefaultPageSize,
		maxPageSize:     cfg.Query.MaxPageSize,
		metrics:         m,
	}
}

func (e *Engine) Now() time.Time { return e.clock.Now() }

func (e *Engine) Timeout() time.Duration { return e.timeout }

// maxOffset bounds how many rows a page may skip. Pages starting past it are
// empty without asking the store for rows.
const maxOffset = math.MaxInt32

// pageBounds clamps rather than rejects; the HTTP layer validates first.
// inRange is false when the page starts past maxOffset.
func (e *Engine) pageBounds(page, size int) (pageNo, pageSize, offset int, inRange bool) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = e.defaultPageSize
	}
	if e.maxPageSize > 0 && size > e.maxPageSize {
		size = e.maxPageSize
	}
	if size < 1 {
		size = 1
	}
	if page-1 > maxOffset/size {
		return page, size, 0, false
	}
	return page, size, (page - 1) * size, true
}

// Run executes one count and one range select for req over src. fixed
// predicates are applied before the caller's filters and cannot be overridden.
func Run[T any](ctx context.Context, e *Engine, schema Schema, src Source[T], req ListRequest, fixed ...Predicate) (page *Page[T], err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveQuery(schema.Entity, metrics.Outcome(err), time.Since(started))
	}()

	sort, err := ResolveSort(schema, req.SortField, req.SortDirection)
	if err != nil {
		return nil, err
	}
	filters, err := Compile(schema, req.Filters, e.clock.Now())
	if err != nil {
		return nil, err
	}
	preds := append(append(make([]Predicate, 0, len(fixed)+len(filters)), fixed...), filters...)

	pageNo, size, offset, inRange := e.pageBounds(req.Page, req.PageSize)

	var (
		total int
		rows  []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := shared.StoreCall(gctx, e.timeout, func(ctx context.Context) (int, error) {
			return src.Count(ctx, preds)
		})
		total = n
		return err
	})
	if inRange {
		g.Go(func() error {
			r, err := shared.StoreCall(gctx, e.timeout, func(ctx context.Context) ([]T, error) {
				return src.Select(ctx, preds, sort, size, offset)
			})
			rows = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []T{}
	}
	return &Page[T]{
		Rows:       rows,
		TotalCount: total,
		Page:       pageNo,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}, nil
}
