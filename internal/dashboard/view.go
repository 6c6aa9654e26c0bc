// Package dashboard loads reports and renders them for the terminal.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/SuHyeon515/wky-report/internal/report"
)

// ErrSuperseded is returned by Load when a newer Load started before the
// report was received.
var ErrSuperseded = errors.New("superseded by a newer request")

// ReportSource returns reports, e.g. the API client.
type ReportSource interface {
	Report(ctx context.Context, q report.Query) (report.Response, error)
}

// Result is a loaded report with its charts.
type Result struct {
	Query    report.Query
	Response report.Response
	Charts   report.Charts
}

// ReportView holds the report of the latest request.
//
// Starting a load cancels the one in flight. A response that arrives after a
// newer load was started is discarded, so the state always belongs to the
// latest request.
type ReportView struct {
	source ReportSource

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *Result
}

func NewReportView(source ReportSource) *ReportView {
	return &ReportView{source: source}
}

// Load fetches the report for q and makes it the current one.
func (v *ReportView) Load(ctx context.Context, q report.Query) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	generation := v.generation
	v.cancel = cancel
	v.mu.Unlock()

	response, err := v.source.Report(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()

	if generation != v.generation {
		return Result{}, ErrSuperseded
	}
	v.cancel = nil

	if err != nil {
		return Result{}, err
	}

	result := Result{
		Query:    q,
		Response: response,
		Charts:   report.BuildCharts(response),
	}
	v.current = &result

	return result, nil
}

// Current returns the report of the latest successful load.
func (v *ReportView) Current() (Result, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.current == nil {
		return Result{}, false
	}
	return *v.current, true
}
