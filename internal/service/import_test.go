package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cookit/internal/domain"
	"cookit/internal/service/mocks"
	"cookit/internal/testutil"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSource
	recipes   *mocks.MockRecipeStore
	publisher *mocks.MockPublisher

	service *ImportService
	logger  *slog.Logger
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.recipes = mocks.NewMockRecipeStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().ID().Return("test-source").AnyTimes()

	s.service = NewImportService(s.source, s.recipes, s.publisher, s.logger)
}

func (s *ImportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func catalogRecipe(id string) domain.Recipe {
	return domain.Recipe{
		ID:    id,
		Title: "Recipe " + id,
		Ingredients: []domain.Ingredient{
			{Name: "flour", Quantity: testutil.Ptr(200.0), MeasureMethod: testutil.Ptr(domain.UnitGram)},
		},
		Steps: []domain.Step{{Number: 1, Instruction: "Mix"}},
	}
}

func (s *ImportServiceTestSuite) TestImport_NewRecipes() {
	ctx := context.Background()
	recipes := []domain.Recipe{catalogRecipe("r1")}

	s.source.EXPECT().FetchRecipes(ctx).Return(recipes, nil)
	s.recipes.EXPECT().ImportRecipe(ctx, &recipes[0]).Return(true, nil)
	s.publisher.EXPECT().Publish(ctx, eventWith(domain.ActionCreated, "r1", "")).Return(nil)

	stats, err := s.service.Import(ctx)

	s.NoError(err)
	s.Equal(1, stats.Fetched)
	s.Equal(1, stats.Imported)
	s.Equal(0, stats.Skipped)
	s.Equal(1, stats.Published)
}

func (s *ImportServiceTestSuite) TestImport_ExistingIsNotAnnounced() {
	ctx := context.Background()
	recipes := []domain.Recipe{catalogRecipe("r1")}

	s.source.EXPECT().FetchRecipes(ctx).Return(recipes, nil)
	s.recipes.EXPECT().ImportRecipe(ctx, &recipes[0]).Return(false, nil)

	stats, err := s.service.Import(ctx)

	s.NoError(err)
	s.Equal(1, stats.Imported)
	s.Equal(0, stats.Published)
}

func (s *ImportServiceTestSuite) TestImport_SkipsInvalid() {
	ctx := context.Background()
	noID := catalogRecipe("")
	noSteps := catalogRecipe("r2")
	noSteps.Steps = nil

	s.source.EXPECT().FetchRecipes(ctx).Return([]domain.Recipe{noID, noSteps}, nil)

	stats, err := s.service.Import(ctx)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(2, stats.Skipped)
	s.Equal(0, stats.Imported)
}

func (s *ImportServiceTestSuite) TestImport_StoreErrorContinues() {
	ctx := context.Background()
	recipes := []domain.Recipe{catalogRecipe("r1"), catalogRecipe("r2")}

	s.source.EXPECT().FetchRecipes(ctx).Return(recipes, nil)
	s.recipes.EXPECT().ImportRecipe(ctx, &recipes[0]).Return(false, errors.New("unavailable"))
	s.recipes.EXPECT().ImportRecipe(ctx, &recipes[1]).Return(true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

	stats, err := s.service.Import(ctx)

	s.NoError(err)
	s.Equal(1, stats.Imported)
	s.Equal(2, stats.Errors)
	s.Equal(0, stats.Published)
}

func (s *ImportServiceTestSuite) TestImport_FetchError() {
	ctx := context.Background()
	s.source.EXPECT().FetchRecipes(ctx).Return(nil, errors.New("timeout"))

	stats, err := s.service.Import(ctx)

	s.Error(err)
	s.Nil(stats)
}
