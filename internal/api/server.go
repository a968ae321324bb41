package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jiwonnow/jiwonnow/internal/auth"
	"github.com/jiwonnow/jiwonnow/internal/bizinfo"
	"github.com/jiwonnow/jiwonnow/internal/config"
	"github.com/jiwonnow/jiwonnow/internal/match"
	"github.com/jiwonnow/jiwonnow/internal/models"
	"github.com/jiwonnow/jiwonnow/internal/store"
)

type Server struct {
	Echo        *echo.Echo
	Listing     *bizinfo.Service
	Enricher    *bizinfo.DetailEnricher
	AuthService *auth.Service
	Profiles    *store.ProfileStore
	Bookmarks   *store.BookmarkStore

	rules    *bizinfo.Rules
	validate *validator.Validate
}

func NewServer(pool *pgxpool.Pool, cfg config.Config) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	client := bizinfo.NewClient(cfg.BizinfoBaseURL, cfg.BizinfoAPIKey)
	listing := bizinfo.NewService(client).WithFreshness(cfg.CacheTTL)

	s := &Server{
		Echo:        e,
		Listing:     listing,
		Enricher:    bizinfo.NewDetailEnricher(),
		AuthService: auth.NewService(pool),
		Profiles:    store.NewProfileStore(pool),
		Bookmarks:   store.NewBookmarkStore(pool),
		rules:       bizinfo.DefaultRules(),
		validate:    validator.New(),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.GET("/projects", s.handleListProjects)
	api.GET("/projects/:id", s.handleGetProject)
	api.GET("/categories", s.handleCategories)

	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Protected routes: profile, recommendations, bookmarks
	me := api.Group("")
	me.Use(auth.Middleware)
	me.GET("/profile", s.handleGetProfile)
	me.PUT("/profile", s.handlePutProfile)
	me.GET("/recommendations", s.handleRecommendations)
	me.POST("/bookmarks/:projectId", s.handleToggleBookmark)
	me.DELETE("/bookmarks/:projectId", s.handleDeleteBookmark)
	me.GET("/bookmarks", s.handleListBookmarks)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// listQueryFromRequest maps the upstream-facing query parameters. The
// category parameter accepts either a label ("금융") or a raw code ("01").
func (s *Server) listQueryFromRequest(c echo.Context) bizinfo.ListQuery {
	q := bizinfo.ListQuery{
		Hashtags: strings.TrimSpace(c.QueryParam("hashtags")),
	}
	if category := strings.TrimSpace(c.QueryParam("category")); category != "" {
		if code := s.rules.CategoryCode(category); code != "" {
			q.CategoryCode = code
		} else {
			q.CategoryCode = category
		}
	}
	return q
}

func (s *Server) handleListProjects(c echo.Context) error {
	query := s.listQueryFromRequest(c)

	projects, err := s.Listing.Projects(c.Request().Context(), query)
	if err != nil {
		c.Logger().Errorf("listing fetch failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Upstream listing unavailable"})
	}

	opts := models.FilterOptions{
		Keyword:     c.QueryParam("keyword"),
		Region:      c.QueryParam("region"),
		Status:      c.QueryParam("status"),
		SupportType: c.QueryParam("support_type"),
	}

	// Status counts are computed before the status filter so the tab bar
	// shows how many items each tab would hold.
	base := match.Filter(projects, models.FilterOptions{
		Keyword:     opts.Keyword,
		Region:      opts.Region,
		SupportType: opts.SupportType,
	})
	counts := models.CountByStatus(base)
	filtered := match.Filter(base, models.FilterOptions{Status: opts.Status})

	page := 1
	size := 20
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 && v <= 100 {
		size = v
	}

	items, more := bizinfo.Paginate(filtered, page, size)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": items,
		"total":    len(filtered),
		"page":     page,
		"size":     size,
		"has_more": more,
		"counts":   counts,
	})
}

func (s *Server) handleGetProject(c echo.Context) error {
	id := c.Param("id")

	project, found, err := s.Listing.FindByID(c.Request().Context(), s.listQueryFromRequest(c), id)
	if err != nil {
		c.Logger().Errorf("listing fetch failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Upstream listing unavailable"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	// Detail-page scraping is opt-in and best-effort; the listing data is
	// already complete enough to render.
	if s.Enricher != nil && c.QueryParam("enrich") == "true" {
		if err := s.Enricher.Enrich(&project); err != nil {
			c.Logger().Warnf("detail enrichment failed for %s: %v", project.ID, err)
		}
	}

	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleCategories(c echo.Context) error {
	type category struct {
		Label string `json:"label"`
		Code  string `json:"code"`
	}

	categories := make([]category, 0, len(s.rules.Categories))
	for label, code := range s.rules.Categories {
		categories = append(categories, category{Label: label, Code: code})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Code < categories[j].Code })

	return c.JSON(http.StatusOK, categories)
}

func (s *Server) handleSignup(c echo.Context) error {
	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp, err := s.AuthService.Signup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		c.Logger().Errorf("signup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Signup failed"})
	}

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp, err := s.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCreds) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		c.Logger().Errorf("login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Login failed"})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetProfile(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	profile, err := s.Profiles.Get(c.Request().Context(), userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not set"})
	}
	if err != nil {
		c.Logger().Errorf("profile load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handlePutProfile(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var profile models.UserProfile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := s.validate.Struct(profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := s.Profiles.Set(c.Request().Context(), userID, profile); err != nil {
		c.Logger().Errorf("profile save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save profile"})
	}

	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleRecommendations(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	profile, err := s.Profiles.Get(c.Request().Context(), userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Profile required for recommendations"})
	}
	if err != nil {
		c.Logger().Errorf("profile load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	projects, err := s.Listing.Projects(c.Request().Context(), s.listQueryFromRequest(c))
	if err != nil {
		c.Logger().Errorf("listing fetch failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Upstream listing unavailable"})
	}

	recommended := match.Recommend(profile, projects)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": recommended,
		"total":    len(recommended),
	})
}

func (s *Server) handleToggleBookmark(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	projectID := c.Param("projectId")
	project, found, err := s.Listing.FindByID(c.Request().Context(), s.listQueryFromRequest(c), projectID)
	if err != nil {
		c.Logger().Errorf("listing fetch failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Upstream listing unavailable"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
	}

	bookmarked, err := s.Bookmarks.Toggle(c.Request().Context(), userID, project)
	if err != nil {
		c.Logger().Errorf("bookmark toggle failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to toggle bookmark"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"project_id": projectID,
		"bookmarked": bookmarked,
	})
}

func (s *Server) handleDeleteBookmark(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	projectID := c.Param("projectId")
	if err := s.Bookmarks.Delete(c.Request().Context(), userID, projectID); err != nil {
		c.Logger().Errorf("bookmark delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete bookmark"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListBookmarks(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	bookmarks, err := s.Bookmarks.ListByUser(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("bookmark list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch bookmarks"})
	}

	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
