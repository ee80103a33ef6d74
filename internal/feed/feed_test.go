package feed_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"cookit/internal/domain"
	"cookit/internal/feed"
	"cookit/internal/feed/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type FeedTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	lister   *mocks.MockLister
	recorder *mocks.MockRecorder
	ctx      context.Context
}

func (s *FeedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lister = mocks.NewMockLister(s.ctrl)
	s.recorder = mocks.NewMockRecorder(s.ctrl)
	s.ctx = context.Background()

	s.recorder.EXPECT().PageLoaded(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *FeedTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedTestSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func recipes(ids ...string) []domain.Recipe {
	out := make([]domain.Recipe, len(ids))
	for i, id := range ids {
		out[i] = domain.Recipe{ID: id, Title: "recipe " + id}
	}
	return out
}

func page(ids ...string) domain.RecipePage {
	p := domain.RecipePage{Recipes: recipes(ids...)}
	if len(ids) > 0 {
		p.Last = domain.Cursor(ids[len(ids)-1])
	}
	return p
}

func ids(rs []domain.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func (s *FeedTestSuite) newFeed(opts ...feed.Option) *feed.Feed {
	opts = append([]feed.Option{feed.WithRecorder(s.recorder)}, opts...)
	f := feed.New(s.lister, opts...)
	s.T().Cleanup(f.Close)
	return f
}

func (s *FeedTestSuite) TestLoadNextPage_AccumulatesAndAdvancesCursor() {
	f := s.newFeed(feed.WithMode(feed.ModePopular), feed.WithPageSize(2))

	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: 2}).Return(page("r1", "r2"), nil),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: 2, After: "r2"}).Return(page("r3"), nil),
	)

	first := f.LoadNextPage(s.ctx, domain.CategoryNone)
	s.Equal(feed.StatusLoaded, first.Status)
	s.Equal([]string{"r1", "r2"}, ids(first.Recipes))

	second := f.LoadNextPage(s.ctx, domain.CategoryNone)
	s.Equal(feed.StatusLoaded, second.Status)
	s.Equal([]string{"r3"}, ids(second.Recipes))

	snap := f.Snapshot()
	s.Len(snap.Recipes, len(first.Recipes)+len(second.Recipes))
	s.Equal([]string{"r1", "r2", "r3"}, ids(snap.Recipes))
	s.Equal(domain.Cursor("r3"), snap.Cursor)
	s.Equal(feed.StateIdle, snap.State)
}

func (s *FeedTestSuite) TestLoadNextPage_BusyWhileFetchInFlight() {
	f := s.newFeed(feed.WithMode(feed.ModePopular))

	entered := make(chan struct{})
	release := make(chan struct{})

	s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: feed.DefaultPageSize}).
		DoAndReturn(func(ctx context.Context, q domain.RecipeQuery) (domain.RecipePage, error) {
			close(entered)
			<-release
			return page("r1", "r2"), nil
		}).
		Times(1)
	s.recorder.EXPECT().PageBusy(feed.ModePopular).Times(1)

	firstDone := make(chan feed.Page, 1)
	go func() {
		firstDone <- f.LoadNextPage(s.ctx, domain.CategoryNone)
	}()
	<-entered

	busy := f.LoadNextPage(s.ctx, domain.CategoryNone)
	s.Equal(feed.StatusBusy, busy.Status)
	s.Empty(busy.Recipes)
	s.NoError(busy.Err)

	snap := f.Snapshot()
	s.Equal(feed.StateFetching, snap.State)
	s.True(snap.Cursor.IsZero())

	close(release)
	first := <-firstDone
	s.Equal(feed.StatusLoaded, first.Status)
	s.Equal(domain.Cursor("r2"), f.Snapshot().Cursor)
}

func (s *FeedTestSuite) TestLoadNextPage_FilterChangeResetsState() {
	f := s.newFeed(feed.WithMode(feed.ModePopular))

	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: feed.DefaultPageSize}).
			Return(page("r1", "r2"), nil),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{
			Category: domain.CategoryBreakfast,
			Limit:    feed.DefaultPageSize,
		}).Return(page("b1"), nil),
	)

	f.LoadNextPage(s.ctx, domain.CategoryNone)
	p := f.LoadNextPage(s.ctx, domain.CategoryBreakfast)

	s.Equal(feed.StatusLoaded, p.Status)
	snap := f.Snapshot()
	s.Equal([]string{"b1"}, ids(snap.Recipes))
	s.Equal(domain.CategoryBreakfast, snap.Filter)
	s.Equal(domain.Cursor("b1"), snap.Cursor)
}

func (s *FeedTestSuite) TestLoadNextPage_EmptyPageKeepsCursor() {
	f := s.newFeed(feed.WithMode(feed.ModePopular))

	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(page("r1"), nil),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: feed.DefaultPageSize, After: "r1"}).
			Return(domain.RecipePage{}, nil),
	)

	f.LoadNextPage(s.ctx, domain.CategoryNone)
	p := f.LoadNextPage(s.ctx, domain.CategoryNone)

	s.Equal(feed.StatusLoaded, p.Status)
	s.Empty(p.Recipes)
	s.NoError(p.Err)
	s.Equal(domain.Cursor("r1"), f.Snapshot().Cursor)
}

func (s *FeedTestSuite) TestLoadNextPage_StoreErrorIsReportedAndGuardCleared() {
	f := s.newFeed(feed.WithMode(feed.ModePopular))
	storeErr := errors.New("unavailable")

	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(domain.RecipePage{}, storeErr),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: feed.DefaultPageSize}).
			Return(page("r1"), nil),
	)
	s.recorder.EXPECT().PageFailed(feed.ModePopular).Times(1)

	failed := f.LoadNextPage(s.ctx, domain.CategoryNone)
	s.Equal(feed.StatusFailed, failed.Status)
	s.ErrorIs(failed.Err, storeErr)
	s.Empty(failed.Recipes)
	s.Equal(feed.StateIdle, f.Snapshot().State)

	retry := f.LoadNextPage(s.ctx, domain.CategoryNone)
	s.Equal(feed.StatusLoaded, retry.Status)
	s.Equal([]string{"r1"}, ids(retry.Recipes))
}

func (s *FeedTestSuite) TestDiscovery_ShufflesOnlyTheFetchedPage() {
	reverse := func(rs []domain.Recipe) { slices.Reverse(rs) }
	f := s.newFeed(feed.WithShuffler(reverse), feed.WithPageSize(3))

	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(page("a", "b", "c"), nil),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Limit: 3, After: "c"}).
			Return(page("d", "e"), nil),
	)

	first := f.LoadNextPage(s.ctx, domain.CategoryNone)
	second := f.LoadNextPage(s.ctx, domain.CategoryNone)

	s.Equal([]string{"c", "b", "a"}, ids(first.Recipes))
	s.Equal([]string{"e", "d"}, ids(second.Recipes))
	s.Equal([]string{"c", "b", "a", "e", "d"}, ids(f.Snapshot().Recipes))
	s.Equal(domain.Cursor("e"), f.Snapshot().Cursor)
}

func (s *FeedTestSuite) TestSimilar_NeverReturnsSeed() {
	seed := domain.Recipe{ID: "seed", Category: []domain.Category{domain.CategorySoup}}
	f := feed.NewSimilar(s.lister, seed, feed.WithRecorder(s.recorder), feed.WithMode(feed.ModePopular))
	s.T().Cleanup(f.Close)

	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{
			Category: domain.CategorySoup,
			Limit:    feed.DefaultSimilarPageSize,
		}).Return(page("a", "seed", "b"), nil),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{
			Category: domain.CategorySoup,
			Limit:    feed.DefaultSimilarPageSize,
			After:    "b",
		}).Return(page("seed", "c"), nil),
	)

	first := f.LoadNextPage(s.ctx, domain.CategoryNone)
	second := f.LoadNextPage(s.ctx, domain.CategoryDessert)

	s.Equal([]string{"a", "b"}, ids(first.Recipes))
	s.Equal([]string{"c"}, ids(second.Recipes))
	s.NotContains(ids(f.Snapshot().Recipes), "seed")
	s.Equal(domain.CategorySoup, f.Snapshot().Filter)
}

func (s *FeedTestSuite) TestLoadNextPage_CallerCancellationDoesNotDropResult() {
	f := s.newFeed(feed.WithMode(feed.ModePopular))

	entered := make(chan struct{})
	release := make(chan struct{})
	s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q domain.RecipeQuery) (domain.RecipePage, error) {
			close(entered)
			<-release
			s.NoError(ctx.Err())
			return page("r1"), nil
		})

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan feed.Page, 1)
	go func() {
		done <- f.LoadNextPage(ctx, domain.CategoryNone)
	}()
	<-entered
	cancel()

	p := <-done
	s.Equal(feed.StatusFailed, p.Status)
	s.ErrorIs(p.Err, context.Canceled)

	close(release)
	s.Eventually(func() bool {
		return len(f.Snapshot().Recipes) == 1
	}, time.Second, 5*time.Millisecond)
}

func (s *FeedTestSuite) TestClose_RejectsFurtherLoads() {
	f := feed.New(s.lister)
	f.Close()
	f.Close()

	p := f.LoadNextPage(s.ctx, domain.CategoryNone)
	s.Equal(feed.StatusClosed, p.Status)
	s.ErrorIs(p.Err, feed.ErrClosed)
	s.True(f.Snapshot().Closed)
}

func (s *FeedTestSuite) TestParseMode() {
	m, err := feed.ParseMode("")
	s.NoError(err)
	s.Equal(feed.ModeDiscovery, m)

	m, err = feed.ParseMode("popular")
	s.NoError(err)
	s.Equal(feed.ModePopular, m)

	_, err = feed.ParseMode("latest")
	s.Error(err)
}
