// Package search backs the client directory. It shows the full client list
// until a term is entered, then paginated search results.
package search

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"backoffice/internal/console/instrument"
	"backoffice/internal/models"
	"backoffice/internal/platform/metrics"
)

const (
	storeName       = "search"
	defaultPageSize = 10
)

type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeSearching Mode = "searching"
)

type Snapshot struct {
	DisplayList []models.Client    `json:"displayList"`
	Pagination  *models.Pagination `json:"pagination"`
	Term        string             `json:"searchTerm"`
	Mode        Mode               `json:"mode"`
	IsLoading   bool               `json:"isLoading"`
	Err         error              `json:"-"`
	Error       string             `json:"error,omitempty"`
}

type Store struct {
	directory ClientDirectory
	logger    *slog.Logger
	metrics   *metrics.Metrics
	pageSize  int
	rec       *instrument.Recorder

	mu         sync.Mutex
	display    []models.Client
	pagination *models.Pagination
	term       string
	mode       Mode
	loading    int
	err        error
	gen        uint64
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func New(directory ClientDirectory, opts ...Option) (*Store, error) {
	if directory == nil {
		return nil, errors.New("client directory is required")
	}
	s := &Store{
		directory: directory,
		logger:    slog.Default(),
		pageSize:  defaultPageSize,
		display:   []models.Client{},
		mode:      ModeIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rec = instrument.New(storeName, s.logger, s.metrics, nil)
	return s, nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		DisplayList: slices.Clone(s.display),
		Term:        s.term,
		Mode:        s.mode,
		IsLoading:   s.loading > 0,
		Err:         s.err,
	}
	if s.pagination != nil {
		p := *s.pagination
		snap.Pagination = &p
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	return snap
}

// ExecuteSearch is the entry point for the search box. A blank term reloads
// the full client list; anything else searches from page 1.
func (s *Store) ExecuteSearch(ctx context.Context, term string) {
	s.mu.Lock()
	s.term = term
	s.mu.Unlock()

	if strings.TrimSpace(term) == "" {
		s.FetchAllClients(ctx)
		return
	}
	s.performSearch(ctx, term, 1)
}

// FetchAllClients shows every client without pagination.
func (s *Store) FetchAllClients(ctx context.Context) {
	ctx, span := s.rec.Start(ctx, "FetchAllClients")
	done := s.begin(ModeIdle)
	defer done()
	gen := s.nextGeneration()

	clients, err := s.directory.AllClients(ctx)
	if s.commit(ctx, gen, clients, nil, err) {
		s.rec.Finish(ctx, span, "FetchAllClients", err)
		return
	}
	s.rec.Finish(ctx, span, "FetchAllClients", nil)
}

// GoToPage moves through search results. Outside a search, or for a page
// outside 1..TotalPages, it does nothing.
func (s *Store) GoToPage(ctx context.Context, page int) {
	s.mu.Lock()
	term, mode := s.term, s.mode
	totalPages := 0
	if s.pagination != nil {
		totalPages = s.pagination.TotalPages
	}
	s.mu.Unlock()

	if mode != ModeSearching || page < 1 || page > totalPages {
		s.rec.Skip(ctx, "GoToPage", "page out of range")
		return
	}
	s.performSearch(ctx, term, page)
}

func (s *Store) performSearch(ctx context.Context, term string, page int) {
	ctx, span := s.rec.Start(ctx, "Search", attribute.Int("page", page))
	done := s.begin(ModeSearching)
	defer done()
	gen := s.nextGeneration()

	resp, err := s.directory.Search(ctx, strings.TrimSpace(term), page, s.pageSize)
	var (
		clients    []models.Client
		pagination *models.Pagination
	)
	if err == nil {
		clients = resp.Data
		p := resp.Pagination
		pagination = &p
	}
	if s.commit(ctx, gen, clients, pagination, err) {
		s.rec.Finish(ctx, span, "Search", err)
		return
	}
	s.rec.Finish(ctx, span, "Search", nil)
}

// commit applies a response unless a newer request superseded it, and
// reports whether it did. A failure empties the display list.
func (s *Store) commit(ctx context.Context, gen uint64, clients []models.Client, pagination *models.Pagination, err error) bool {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.rec.Stale(ctx, "search_results")
		return false
	}
	defer s.mu.Unlock()
	if err != nil {
		s.display = []models.Client{}
		s.err = err
		return true
	}
	s.display = slices.Clone(clients)
	if s.display == nil {
		s.display = []models.Client{}
	}
	s.pagination = pagination
	return true
}

func (s *Store) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

func (s *Store) begin(mode Mode) func() {
	s.mu.Lock()
	s.loading++
	s.err = nil
	s.mode = mode
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}
}

// Reset returns to the idle, empty directory.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.display = []models.Client{}
	s.pagination = nil
	s.term = ""
	s.mode = ModeIdle
	s.err = nil
}
