package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cookit/internal/domain"
	"cookit/internal/feed"
)

// Section is one row of the home screen.
type Section struct {
	Key      string          `json:"key"`
	Category domain.Category `json:"category,omitempty"`
	Mode     feed.Mode       `json:"mode"`
	Status   feed.Status     `json:"status"`
	Recipes  []domain.Recipe `json:"recipes"`
	Error    string          `json:"error,omitempty"`
}

type sectionDef struct {
	key      string
	category domain.Category
	mode     feed.Mode
}

var homeSections = []sectionDef{
	{key: "most_popular", mode: feed.ModePopular},
	{key: "breakfast", category: domain.CategoryBreakfast, mode: feed.ModeDiscovery},
	{key: "timeless_classics", category: domain.CategoryTimelessClassics, mode: feed.ModeDiscovery},
	{key: "protein_boost", category: domain.CategoryProteinBoost, mode: feed.ModeDiscovery},
}

type HomeService struct {
	lister   feed.Lister
	pageSize int
	recorder feed.Recorder
	logger   *slog.Logger
}

func NewHomeService(lister feed.Lister, pageSize int, recorder feed.Recorder, logger *slog.Logger) *HomeService {
	return &HomeService{
		lister:   lister,
		pageSize: pageSize,
		recorder: recorder,
		logger:   logger.With("service", "home"),
	}
}

// Home loads every section concurrently. A failing section comes back empty
// with its status set and does not affect the others.
func (s *HomeService) Home(ctx context.Context) []Section {
	sections := make([]Section, len(homeSections))

	// Section failures are reported in the section itself and never through
	// the group, so one failing section cannot cancel its siblings.
	var g errgroup.Group
	for i, def := range homeSections {
		g.Go(func() error {
			sections[i] = s.loadSection(ctx, def)
			return nil
		})
	}
	_ = g.Wait()

	return sections
}

func (s *HomeService) loadSection(ctx context.Context, def sectionDef) Section {
	opts := []feed.Option{
		feed.WithMode(def.mode),
		feed.WithPageSize(s.pageSize),
		feed.WithLogger(s.logger.With("section", def.key)),
	}
	if s.recorder != nil {
		opts = append(opts, feed.WithRecorder(s.recorder))
	}

	f := feed.New(s.lister, opts...)
	defer f.Close()

	page := f.LoadNextPage(ctx, def.category)

	section := Section{
		Key:      def.key,
		Category: def.category,
		Mode:     def.mode,
		Status:   page.Status,
		Recipes:  page.Recipes,
	}
	if section.Recipes == nil {
		section.Recipes = []domain.Recipe{}
	}
	if page.Err != nil {
		section.Error = page.Err.Error()
	}
	return section
}
