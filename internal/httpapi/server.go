package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/apikey"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/cefr"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/lang"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/learner"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/logger"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/onboarding"
)

// Learner is the service surface the handlers need.
type Learner interface {
	Scale() *cefr.Scale
	Position(ctx context.Context, userID uuid.UUID) (learner.PositionView, error)
	CommitPosition(ctx context.Context, userID uuid.UUID, position int) (learner.PositionView, error)
	CommitSliderValue(ctx context.Context, userID uuid.UUID, value float64) (learner.PositionView, error)
	Onboarding(ctx context.Context, userID uuid.UUID) (learner.OnboardingView, error)
	UpdateOnboarding(ctx context.Context, userID uuid.UUID, patch onboarding.Patch) (learner.OnboardingView, error)
	ResetOnboarding(ctx context.Context, userID uuid.UUID) (learner.OnboardingView, error)
	NextScreen(ctx context.Context, userID uuid.UUID, current onboarding.Step) (learner.Navigation, error)
	RecordWord(ctx context.Context, userID uuid.UUID, word, language string, at time.Time) (int64, error)
	Streak(ctx context.Context, userID uuid.UUID, loc *time.Location) (learner.StreakView, error)
}

// Options configures a Server. Keys, Logger, AllowedOrigins and Now are
// optional.
type Options struct {
	Learner        Learner
	Catalog        lang.Catalog
	Keys           *apikey.Generator
	Logger         *logger.Logger
	AllowedOrigins []string
	Now            func() time.Time
}

// Server serves the learner API over HTTP.
type Server struct {
	engine  *gin.Engine
	learner Learner
	catalog lang.Catalog
	keys    *apikey.Generator
	log     *logger.Logger
	now     func() time.Time
}

// NewServer builds the gin engine and registers all routes.
func NewServer(opts Options) *Server {
	s := &Server{
		engine:  gin.New(),
		learner: opts.Learner,
		catalog: opts.Catalog,
		keys:    opts.Keys,
		log:     opts.Logger,
		now:     opts.Now,
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	if len(opts.AllowedOrigins) > 0 {
		s.engine.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "PUT", "PATCH", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", frontendKeyHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	v1 := s.engine.Group("/api/v1")
	v1.Use(s.requireFrontendKey())
	{
		v1.GET("/levels", s.listLevels)
		v1.GET("/levels/slider", s.sliderForPosition)
		v1.GET("/levels/position", s.positionForSlider)
		v1.GET("/languages", s.listLanguages)

		users := v1.Group("/users/:id")
		users.Use(s.parseUserID())
		{
			users.GET("/position", s.getPosition)
			users.PUT("/position", s.putPosition)

			users.GET("/onboarding", s.getOnboarding)
			users.PATCH("/onboarding", s.patchOnboarding)
			users.DELETE("/onboarding", s.deleteOnboarding)
			users.GET("/onboarding/next", s.nextScreen)

			users.POST("/words", s.postWord)
			users.GET("/streak", s.getStreak)
		}
	}
}

// Handler exposes the engine for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("http server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		s.log.Info("http server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
