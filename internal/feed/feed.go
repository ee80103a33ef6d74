package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"cookit/internal/domain"
)

const (
	DefaultPageSize        = 10
	DefaultSimilarPageSize = 5
)

var ErrClosed = errors.New("feed closed")

type State int

const (
	StateIdle State = iota
	StateFetching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Mode decides how a fetched page is ordered before it is handed out.
type Mode string

const (
	// ModeDiscovery shuffles every fetched page.
	ModeDiscovery Mode = "discovery"
	// ModePopular keeps store order.
	ModePopular Mode = "popular"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeDiscovery:
		return ModeDiscovery, nil
	case ModePopular:
		return ModePopular, nil
	default:
		return "", fmt.Errorf("unknown feed mode %q", s)
	}
}

type Status string

const (
	StatusLoaded Status = "loaded"
	StatusBusy   Status = "busy"
	StatusFailed Status = "failed"
	StatusClosed Status = "closed"
)

// Page is the outcome of a single LoadNextPage call. Recipes is empty unless
// Status is StatusLoaded.
type Page struct {
	Recipes []domain.Recipe
	Status  Status
	Err     error
}

type Snapshot struct {
	Recipes []domain.Recipe
	Filter  domain.Category
	Cursor  domain.Cursor
	State   State
	Mode    Mode
	Closed  bool
}

type Option func(*Feed)

func WithPageSize(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

func WithMode(m Mode) Option {
	return func(f *Feed) {
		f.mode = m
	}
}

// WithExclude drops the given recipe IDs from every page.
func WithExclude(ids ...string) Option {
	return func(f *Feed) {
		for _, id := range ids {
			f.exclude[id] = struct{}{}
		}
	}
}

func WithShuffler(shuffle func([]domain.Recipe)) Option {
	return func(f *Feed) {
		f.shuffle = shuffle
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Feed) {
		f.logger = logger
	}
}

func WithRecorder(r Recorder) Option {
	return func(f *Feed) {
		f.recorder = r
	}
}

// withPinnedFilter makes every load use c regardless of the caller's filter.
func withPinnedFilter(c domain.Category) Option {
	return func(f *Feed) {
		f.pinned = true
		f.filter = c
	}
}

// Feed is a filterable, paginated accumulation of recipes.
//
// All feed state is owned by a single goroutine started in New. Callers talk to
// it over channels, and the store call runs on a helper goroutine that reports
// back to the owner, so at most one fetch is in flight per feed.
type Feed struct {
	lister   Lister
	pageSize int
	mode     Mode
	exclude  map[string]struct{}
	shuffle  func([]domain.Recipe)
	logger   *slog.Logger
	recorder Recorder
	pinned   bool

	// owned by run
	state  State
	filter domain.Category
	cursor domain.Cursor
	items  []domain.Recipe

	loads     chan loadRequest
	snapshots chan chan Snapshot
	results   chan fetchResult
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	inflight  sync.WaitGroup
}

type loadRequest struct {
	ctx    context.Context
	filter domain.Category
	reply  chan Page
}

type fetchResult struct {
	page  domain.RecipePage
	err   error
	reply chan Page
}

func New(lister Lister, opts ...Option) *Feed {
	f := &Feed{
		lister:    lister,
		pageSize:  DefaultPageSize,
		mode:      ModeDiscovery,
		exclude:   make(map[string]struct{}),
		shuffle:   shuffleRecipes,
		logger:    slog.New(slog.DiscardHandler),
		recorder:  nopRecorder{},
		loads:     make(chan loadRequest),
		snapshots: make(chan chan Snapshot),
		results:   make(chan fetchResult),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("mode", f.mode)

	go f.run()

	return f
}

// NewSimilar returns a feed of recipes sharing the seed's primary category.
// The seed itself is never returned and the filter passed to LoadNextPage is
// ignored.
func NewSimilar(lister Lister, seed domain.Recipe, opts ...Option) *Feed {
	base := []Option{
		WithPageSize(DefaultSimilarPageSize),
		WithExclude(seed.ID),
	}
	opts = append(base, opts...)
	opts = append(opts, withPinnedFilter(seed.PrimaryCategory()))
	return New(lister, opts...)
}

// LoadNextPage fetches the page after the current cursor. A different filter
// than the previous call resets the accumulator and cursor first. If a fetch
// is already running the call returns at once with StatusBusy.
//
// Abandoning ctx returns ctx.Err() to the caller but does not cancel the
// fetch; its result still lands in the accumulator.
func (f *Feed) LoadNextPage(ctx context.Context, filter domain.Category) Page {
	reply := make(chan Page, 1)

	select {
	case f.loads <- loadRequest{ctx: ctx, filter: filter, reply: reply}:
	case <-f.done:
		return Page{Status: StatusClosed, Err: ErrClosed}
	case <-ctx.Done():
		return Page{Status: StatusFailed, Err: ctx.Err()}
	}

	select {
	case p := <-reply:
		return p
	case <-ctx.Done():
		return Page{Status: StatusFailed, Err: ctx.Err()}
	case <-f.done:
		return Page{Status: StatusClosed, Err: ErrClosed}
	}
}

// Snapshot returns a copy of the accumulated recipes and pagination state.
func (f *Feed) Snapshot() Snapshot {
	reply := make(chan Snapshot, 1)
	select {
	case f.snapshots <- reply:
		return <-reply
	case <-f.done:
		return Snapshot{Mode: f.mode, Closed: true}
	}
}

func (f *Feed) Mode() Mode {
	return f.mode
}

// Close stops the owning goroutine and waits for a running fetch to return.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		close(f.done)
	})
	<-f.stopped
	f.inflight.Wait()
}

func (f *Feed) run() {
	defer close(f.stopped)

	for {
		select {
		case req := <-f.loads:
			f.startLoad(req)
		case res := <-f.results:
			f.finishLoad(res)
		case reply := <-f.snapshots:
			reply <- f.snapshot()
		case <-f.done:
			return
		}
	}
}

func (f *Feed) startLoad(req loadRequest) {
	if f.state == StateFetching {
		f.recorder.PageBusy(f.mode)
		req.reply <- Page{Status: StatusBusy}
		return
	}

	filter := req.filter
	if f.pinned {
		filter = f.filter
	}
	if filter != f.filter {
		f.logger.Debug("filter changed, resetting feed",
			"from", f.filter,
			"to", filter,
			"dropped", len(f.items),
		)
		f.filter = filter
		f.cursor = ""
		f.items = nil
	}

	f.state = StateFetching
	q := domain.RecipeQuery{
		Category: f.filter,
		Limit:    f.pageSize,
		After:    f.cursor,
	}

	f.inflight.Add(1)
	go f.fetch(context.WithoutCancel(req.ctx), q, req.reply)
}

func (f *Feed) fetch(ctx context.Context, q domain.RecipeQuery, reply chan Page) {
	defer f.inflight.Done()

	page, err := f.lister.ListRecipes(ctx, q)

	select {
	case f.results <- fetchResult{page: page, err: err, reply: reply}:
	case <-f.done:
	}
}

func (f *Feed) finishLoad(res fetchResult) {
	f.state = StateIdle

	if res.err != nil {
		f.logger.Error("failed to load recipe page",
			"filter", f.filter,
			"cursor", f.cursor,
			"error", res.err,
		)
		f.recorder.PageFailed(f.mode)
		res.reply <- Page{Status: StatusFailed, Err: res.err}
		return
	}

	if n := len(res.page.Recipes); n > 0 {
		if !res.page.Last.IsZero() {
			f.cursor = res.page.Last
		} else {
			f.cursor = domain.Cursor(res.page.Recipes[n-1].ID)
		}
	}

	recipes := f.dropExcluded(res.page.Recipes)
	if f.mode == ModeDiscovery {
		f.shuffle(recipes)
	}
	f.items = append(f.items, recipes...)

	f.logger.Debug("loaded recipe page",
		"filter", f.filter,
		"recipes", len(recipes),
		"total", len(f.items),
		"cursor", f.cursor,
	)
	f.recorder.PageLoaded(f.mode, len(recipes))

	res.reply <- Page{Recipes: recipes, Status: StatusLoaded}
}

func (f *Feed) dropExcluded(recipes []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if _, skip := f.exclude[r.ID]; skip {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (f *Feed) snapshot() Snapshot {
	items := make([]domain.Recipe, len(f.items))
	copy(items, f.items)
	return Snapshot{
		Recipes: items,
		Filter:  f.filter,
		Cursor:  f.cursor,
		State:   f.state,
		Mode:    f.mode,
	}
}

func shuffleRecipes(recipes []domain.Recipe) {
	rand.Shuffle(len(recipes), func(i, j int) {
		recipes[i], recipes[j] = recipes[j], recipes[i]
	})
}

type nopRecorder struct{}

func (nopRecorder) PageLoaded(Mode, int) {}
func (nopRecorder) PageBusy(Mode)        {}
func (nopRecorder) PageFailed(Mode)      {}
