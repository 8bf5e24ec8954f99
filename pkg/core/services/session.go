package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
)

// Page is a view of the interactive session
type Page string

const (
	PageHome    Page = "home"
	PageGuide   Page = "guide"
	PageCompute Page = "compute"
)

// ParsePage returns the page with the given name
func ParsePage(name string) (Page, error) {
	switch p := Page(name); p {
	case PageHome, PageGuide, PageCompute:
		return p, nil
	default:
		return "", fmt.Errorf("unknown page %q", name)
	}
}

// Session holds the state of one interactive user: the current page, the uploaded
// dataset and the last computed result. It is not safe for concurrent use
type Session struct {
	page        Page
	datasetName string
	table       *dataset.Table
	result      *AllocationResult
}

// NewSession returns a session on the home page with nothing loaded
func NewSession() *Session {
	return &Session{page: PageHome}
}

// Page returns the current page
func (s *Session) Page() Page {
	return s.page
}

// Navigate moves to page. Home and guide discard the dataset and results;
// compute keeps the dataset but discards results
func (s *Session) Navigate(page Page) {
	switch page {
	case PageHome, PageGuide:
		s.datasetName = ""
		s.table = nil
		s.result = nil
	case PageCompute:
		s.result = nil
	}
	s.page = page
}

// Upload replaces the dataset. Results are discarded when the dataset changes
func (s *Session) Upload(name string, table *dataset.Table) {
	if name != s.datasetName || table != s.table {
		s.result = nil
	}
	s.datasetName = name
	s.table = table
}

// DatasetName returns the name of the uploaded dataset, or "" when none
func (s *Session) DatasetName() string {
	return s.datasetName
}

// Table returns the uploaded dataset, or nil when none
func (s *Session) Table() *dataset.Table {
	return s.table
}

// Result returns the last computed result, or nil when none
func (s *Session) Result() *AllocationResult {
	return s.result
}

// Compute runs the allocation on the uploaded dataset, keeps the result and
// moves to the compute page
func (s *Session) Compute(ctx context.Context, logger *zap.Logger, req AllocationRequest) (*AllocationResult, error) {
	if s.table == nil {
		return nil, fmt.Errorf("no dataset uploaded")
	}

	result, err := ComputeAllocation(ctx, TableSource{Table: s.table}, logger, req)
	if err != nil {
		s.result = nil
		return nil, err
	}

	s.page = PageCompute
	s.result = result
	return result, nil
}
