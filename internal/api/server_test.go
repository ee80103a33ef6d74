package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cookit/internal/api/mocks"
	"cookit/internal/domain"
	"cookit/internal/feed"
	feedmocks "cookit/internal/feed/mocks"
	"cookit/internal/service"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	recipes  *mocks.MockRecipes
	accounts *mocks.MockAccounts
	media    *mocks.MockMedia
	home     *mocks.MockHome
	lister   *feedmocks.MockLister
	feeds    *feed.Registry
	server   *Server
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.recipes = mocks.NewMockRecipes(s.ctrl)
	s.accounts = mocks.NewMockAccounts(s.ctrl)
	s.media = mocks.NewMockMedia(s.ctrl)
	s.home = mocks.NewMockHome(s.ctrl)
	s.lister = feedmocks.NewMockLister(s.ctrl)

	logger := slog.New(slog.DiscardHandler)
	s.feeds = feed.NewRegistry(time.Minute, 0, logger)

	s.server = NewServer(Deps{
		Recipes:  s.recipes,
		Accounts: s.accounts,
		Media:    s.media,
		Home:     s.home,
		Feeds:    s.feeds,
		Lister:   s.lister,
	}, Config{
		AllowedOrigins: []string{"https://app.cookit.test"},
		PageSize:       2,
	}, logger)
}

func (s *ServerTestSuite) TearDownTest() {
	s.feeds.Close()
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, target string, body any, token string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *ServerTestSuite) expectUser(token, uid string) {
	s.accounts.EXPECT().Authenticate(gomock.Any(), token).Return(&domain.AuthUser{UID: uid, Email: uid + "@example.com"}, nil)
}

func (s *ServerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body errorBody
	s.decode(rec, &body)
	return body.Code
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/nope", nil, "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", s.errorCode(rec))
}

func (s *ServerTestSuite) TestListRecipes() {
	s.recipes.EXPECT().ListPage(gomock.Any(), domain.CategorySoup, domain.Cursor("r9"), 5).
		Return(domain.RecipePage{Recipes: []domain.Recipe{{ID: "r10"}}, Last: "r10"}, nil)

	rec := s.do(http.MethodGet, "/recipes?category=soup&cursor=r9&limit=5", nil, "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp recipeListResponse
	s.decode(rec, &resp)
	s.Len(resp.Recipes, 1)
	s.Equal(domain.Cursor("r10"), resp.NextCursor)
}

func (s *ServerTestSuite) TestListRecipes_InvalidInput() {
	rec := s.do(http.MethodGet, "/recipes?category=pizza", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid_request", s.errorCode(rec))

	rec = s.do(http.MethodGet, "/recipes?limit=ten", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGetRecipe_SignedIn() {
	s.expectUser("tok", "u1")
	s.recipes.EXPECT().GetRecipe(gomock.Any(), "r1", "u1").
		Return(&service.RecipeDetail{Recipe: domain.Recipe{ID: "r1", Title: "Soup"}, IsSaved: true}, nil)

	rec := s.do(http.MethodGet, "/recipes/r1", nil, "tok")

	s.Require().Equal(http.StatusOK, rec.Code)
	var detail service.RecipeDetail
	s.decode(rec, &detail)
	s.Equal("Soup", detail.Title)
	s.True(detail.IsSaved)
}

func (s *ServerTestSuite) TestGetRecipe_NotFound() {
	s.recipes.EXPECT().GetRecipe(gomock.Any(), "missing", "").Return(nil, domain.ErrRecipeNotFound)

	rec := s.do(http.MethodGet, "/recipes/missing", nil, "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", s.errorCode(rec))
}

func (s *ServerTestSuite) TestGetRecipe_BadToken() {
	s.accounts.EXPECT().Authenticate(gomock.Any(), "expired").Return(nil, domain.ErrUnauthenticated)

	rec := s.do(http.MethodGet, "/recipes/r1", nil, "expired")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("unauthenticated", s.errorCode(rec))
}

func (s *ServerTestSuite) TestCreateRecipe_RequiresAuth() {
	rec := s.do(http.MethodPost, "/recipes", domain.Recipe{Title: "Soup"}, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestCreateRecipe() {
	s.expectUser("tok", "u1")
	s.recipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.AuthUser, input domain.Recipe) (*domain.Recipe, error) {
			s.Equal("u1", user.UID)
			s.Equal("Soup", input.Title)
			input.ID = "new"
			return &input, nil
		},
	)

	rec := s.do(http.MethodPost, "/recipes", domain.Recipe{Title: "Soup"}, "tok")

	s.Require().Equal(http.StatusCreated, rec.Code)
	var created domain.Recipe
	s.decode(rec, &created)
	s.Equal("new", created.ID)
}

func (s *ServerTestSuite) TestCreateRecipe_Invalid() {
	s.expectUser("tok", "u1")
	s.recipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.InvalidRecipe("title is required"))

	rec := s.do(http.MethodPost, "/recipes", domain.Recipe{}, "tok")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestCreateRecipe_MalformedBody() {
	s.expectUser("tok", "u1")

	req := httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestRecordView() {
	s.recipes.EXPECT().RecordView(gomock.Any(), "r1", "").Return(nil)

	rec := s.do(http.MethodPost, "/recipes/r1/views", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestFavorites() {
	s.expectUser("tok", "u1")
	s.recipes.EXPECT().SaveRecipe(gomock.Any(), gomock.Cond(func(u domain.AuthUser) bool {
		return u.UID == "u1" && u.Email == "u1@example.com"
	}), "r1").Return(nil)
	rec := s.do(http.MethodPut, "/me/favorites/r1", nil, "tok")
	s.Equal(http.StatusNoContent, rec.Code)

	s.expectUser("tok", "u1")
	s.recipes.EXPECT().ListFavorites(gomock.Any(), "u1").Return(nil, nil)
	rec = s.do(http.MethodGet, "/me/favorites", nil, "tok")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"recipes":[]}`, rec.Body.String())

	s.expectUser("tok", "u1")
	s.recipes.EXPECT().UnsaveRecipe(gomock.Any(), "u1", "r1").Return(nil)
	rec = s.do(http.MethodDelete, "/me/favorites/r1", nil, "tok")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestHome() {
	s.home.EXPECT().Home(gomock.Any()).Return([]service.Section{
		{Key: "most_popular", Mode: feed.ModePopular, Status: feed.StatusLoaded, Recipes: []domain.Recipe{{ID: "r1"}}},
	})

	rec := s.do(http.MethodGet, "/home", nil, "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp struct {
		Sections []service.Section `json:"sections"`
	}
	s.decode(rec, &resp)
	s.Require().Len(resp.Sections, 1)
	s.Equal("most_popular", resp.Sections[0].Key)
}

func (s *ServerTestSuite) createFeed(body createFeedRequest) feedResponse {
	rec := s.do(http.MethodPost, "/feeds", body, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp feedResponse
	s.decode(rec, &resp)
	return resp
}

func (s *ServerTestSuite) TestFeed_Lifecycle() {
	gomock.InOrder(
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Category: domain.CategorySoup, Limit: 2}).
			Return(domain.RecipePage{Recipes: []domain.Recipe{{ID: "a"}, {ID: "b"}}, Last: "b"}, nil),
		s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Category: domain.CategorySoup, Limit: 2, After: "b"}).
			Return(domain.RecipePage{Recipes: []domain.Recipe{{ID: "c"}}, Last: "c"}, nil),
	)

	created := s.createFeed(createFeedRequest{Mode: "popular", Category: "soup"})
	s.NotEmpty(created.ID)
	s.Equal(feed.ModePopular, created.Mode)
	s.Equal(feed.StatusLoaded, created.Status)
	s.Equal(domain.CategorySoup, created.Category)
	s.Len(created.Recipes, 2)

	// No category keeps the current filter.
	rec := s.do(http.MethodPost, "/feeds/"+created.ID+"/next", struct{}{}, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var page pageResponse
	s.decode(rec, &page)
	s.Equal(feed.StatusLoaded, page.Status)
	s.Require().Len(page.Recipes, 1)
	s.Equal("c", page.Recipes[0].ID)
	s.Equal(3, page.Total)

	rec = s.do(http.MethodGet, "/feeds/"+created.ID, nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var snap feedResponse
	s.decode(rec, &snap)
	s.Equal(domain.Cursor("c"), snap.Cursor)
	s.Equal("idle", snap.State)
	s.Len(snap.Recipes, 3)

	rec = s.do(http.MethodDelete, "/feeds/"+created.ID, nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/feeds/"+created.ID, nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestFeed_InvalidRequest() {
	rec := s.do(http.MethodPost, "/feeds", createFeedRequest{Mode: "random"}, "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/feeds", createFeedRequest{Category: "pizza"}, "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/feeds", createFeedRequest{PageSize: 500}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestFeed_NextUnknown() {
	rec := s.do(http.MethodPost, "/feeds/nope/next", nil, "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestFeed_NextFailed() {
	s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(domain.RecipePage{}, nil)
	created := s.createFeed(createFeedRequest{Mode: "popular"})

	s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(domain.RecipePage{}, errors.New("unavailable"))
	rec := s.do(http.MethodPost, "/feeds/"+created.ID+"/next", nextPageRequest{}, "")

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("feed_failed", s.errorCode(rec))
}

func (s *ServerTestSuite) TestFeed_NextBusy() {
	s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(domain.RecipePage{}, nil)
	created := s.createFeed(createFeedRequest{Mode: "popular"})

	started := make(chan struct{})
	release := make(chan struct{})
	s.lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.RecipeQuery) (domain.RecipePage, error) {
			close(started)
			<-release
			return domain.RecipePage{Recipes: []domain.Recipe{{ID: "x"}}, Last: "x"}, nil
		},
	)

	first := make(chan int, 1)
	go func() {
		first <- s.do(http.MethodPost, "/feeds/"+created.ID+"/next", nextPageRequest{}, "").Code
	}()
	<-started

	rec := s.do(http.MethodPost, "/feeds/"+created.ID+"/next", nextPageRequest{}, "")
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("busy", s.errorCode(rec))

	close(release)
	s.Equal(http.StatusOK, <-first)
}

func (s *ServerTestSuite) TestFeed_Similar() {
	seed := domain.Recipe{ID: "seed", Category: []domain.Category{domain.CategoryDessert}}
	s.recipes.EXPECT().GetRecipe(gomock.Any(), "seed", "").Return(&service.RecipeDetail{Recipe: seed}, nil)
	s.lister.EXPECT().ListRecipes(gomock.Any(), domain.RecipeQuery{Category: domain.CategoryDessert, Limit: 3}).
		Return(domain.RecipePage{Recipes: []domain.Recipe{{ID: "seed"}, {ID: "d1"}}, Last: "d1"}, nil)

	created := s.createFeed(createFeedRequest{SimilarTo: "seed", PageSize: 3, Category: "soup"})

	s.Equal(domain.CategoryDessert, created.Category)
	s.Require().Len(created.Recipes, 1)
	s.Equal("d1", created.Recipes[0].ID)
}

func (s *ServerTestSuite) TestSignIn() {
	s.accounts.EXPECT().SignIn(gomock.Any(), "a@b.c", "secret").
		Return(&domain.Session{User: domain.AuthUser{UID: "u1"}, IDToken: "id"}, nil)

	rec := s.do(http.MethodPost, "/auth/signin", credentialsRequest{Email: "a@b.c", Password: "secret"}, "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var session domain.Session
	s.decode(rec, &session)
	s.Equal("id", session.IDToken)
}

func (s *ServerTestSuite) TestSignIn_Failed() {
	s.accounts.EXPECT().SignIn(gomock.Any(), "a@b.c", "wrong").
		Return(nil, errors.Join(domain.ErrSignInFailed, errors.New("INVALID_PASSWORD")))

	rec := s.do(http.MethodPost, "/auth/signin", credentialsRequest{Email: "a@b.c", Password: "wrong"}, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	var body errorBody
	s.decode(rec, &body)
	s.Equal("sign_in_failed", body.Code)
	s.NotContains(body.Error, "INVALID_PASSWORD")
}

func (s *ServerTestSuite) TestSignUp_MissingFields() {
	s.accounts.EXPECT().SignUp(gomock.Any(), "", "").Return(nil, domain.ErrNoEmailOrPassword)

	rec := s.do(http.MethodPost, "/auth/signup", credentialsRequest{}, "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestSignInWithApple() {
	s.accounts.EXPECT().SignInWithApple(gomock.Any(), "apple-token", "n0nce").
		Return(&domain.Session{User: domain.AuthUser{UID: "u1"}}, nil)

	rec := s.do(http.MethodPost, "/auth/apple", idTokenRequest{IDToken: "apple-token", Nonce: "n0nce"}, "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestPasswordReset() {
	s.accounts.EXPECT().SendPasswordReset(gomock.Any(), "a@b.c").Return(nil)

	rec := s.do(http.MethodPost, "/auth/password-reset", emailRequest{Email: "a@b.c"}, "")

	s.Equal(http.StatusAccepted, rec.Code)
}

func (s *ServerTestSuite) TestLinkGoogle_PassesCallerToken() {
	s.expectUser("anon-token", "u1")
	s.accounts.EXPECT().LinkGoogle(gomock.Any(), "anon-token", "google-token").
		Return(&domain.Session{User: domain.AuthUser{UID: "u1"}}, nil)

	rec := s.do(http.MethodPost, "/me/link/google", idTokenRequest{IDToken: "google-token"}, "anon-token")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestCurrentUserAndDelete() {
	s.expectUser("tok", "u1")
	s.accounts.EXPECT().CurrentUser(gomock.Any(), "tok").
		Return(&service.Account{User: domain.AuthUser{UID: "u1"}, Profile: &domain.UserProfile{UserID: "u1"}}, nil)
	rec := s.do(http.MethodGet, "/me", nil, "tok")
	s.Require().Equal(http.StatusOK, rec.Code)
	var account service.Account
	s.decode(rec, &account)
	s.Equal("u1", account.Profile.UserID)

	s.expectUser("tok", "u1")
	s.accounts.EXPECT().DeleteAccount(gomock.Any(), "tok").Return(nil)
	rec = s.do(http.MethodDelete, "/me", nil, "tok")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestUploadImage_Raw() {
	s.expectUser("tok", "u1")
	s.media.EXPECT().UploadImage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r io.Reader) (*service.Image, error) {
			data, err := io.ReadAll(r)
			s.Require().NoError(err)
			s.Equal("jpegdata", string(data))
			return &service.Image{Key: "recipes/1.jpg", URL: "https://cdn/recipes/1.jpg"}, nil
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/images", strings.NewReader("jpegdata"))
	req.Header.Set("Content-Type", "image/jpeg")
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var img service.Image
	s.decode(rec, &img)
	s.Equal("recipes/1.jpg", img.Key)
}

func (s *ServerTestSuite) TestUploadImage_Unsupported() {
	s.expectUser("tok", "u1")
	s.media.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnsupportedImage)

	req := httptest.NewRequest(http.MethodPost, "/images", strings.NewReader("text"))
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestImportImage() {
	s.expectUser("tok", "u1")
	s.media.EXPECT().ImportImage(gomock.Any(), "https://example.com/a.png").
		Return(&service.Image{Key: "recipes/2.jpg"}, nil)

	rec := s.do(http.MethodPost, "/images/import", importImageRequest{URL: "https://example.com/a.png"}, "tok")

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ServerTestSuite) TestDeleteImage_NestedKey() {
	s.expectUser("tok", "u1")
	s.media.EXPECT().DeleteImage(gomock.Any(), "recipes/2.jpg").Return(nil)

	rec := s.do(http.MethodDelete, "/images/recipes/2.jpg", nil, "tok")

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestUpstreamFailureIsHidden() {
	s.recipes.EXPECT().GetRecipe(gomock.Any(), "r1", "").Return(nil, errors.New("rpc error: code = Unavailable"))

	rec := s.do(http.MethodGet, "/recipes/r1", nil, "")

	s.Equal(http.StatusBadGateway, rec.Code)
	s.NotContains(rec.Body.String(), "rpc error")
}

func (s *ServerTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/recipes", nil)
	req.Header.Set("Origin", "https://app.cookit.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal("https://app.cookit.test", rec.Header().Get("Access-Control-Allow-Origin"))
}
