package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"riddlegrid/internal/deck"
	"riddlegrid/web"
)

// App holds server state: the loaded deck and one mounted board per session.
type App struct {
	Config       Config
	Deck         deck.Deck
	Sessions     map[string]*Session
	SessionMutex sync.RWMutex
	LimiterMap   map[string]*clientLimiter
	LimiterMutex sync.Mutex
	Completions  atomic.Int64
	StartTime    time.Time
}

func newApp(cfg Config, d deck.Deck) *App {
	return &App{
		Config:     cfg,
		Deck:       d,
		Sessions:   make(map[string]*Session),
		LimiterMap: make(map[string]*clientLimiter),
		StartTime:  time.Now(),
	}
}

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	setLogLevel(cfg.LogLevel)
	logInfo("Starting riddlegrid in %s mode", map[bool]string{true: "production", false: "development"}[cfg.IsProduction])

	d, err := deck.Load(cfg.DeckPath)
	if err != nil {
		logFatal("Failed to load deck: %v", err)
	}
	logInfo("Loaded deck %q with %d riddles (%d distinct answers)", d.Title, len(d.Riddles), len(d.Answers()))

	app := newApp(cfg, d)
	router := app.newRouter()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go app.runSessionJanitor(ctx, cfg.SweepInterval)

	app.startServer(ctx, router)
}

func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(app.cacheHeadersMiddleware())

	if app.Config.IsProduction && dirExists("dist/templates") {
		logInfo("Serving assets from dist/ directory")
		router.SetHTMLTemplate(template.Must(template.ParseGlob("dist/templates/*.html")))
		router.Static("/static", "./dist/static")
	} else {
		logInfo("Serving embedded assets")
		router.SetHTMLTemplate(web.Templates())
		router.StaticFS("/static", web.StaticFS())
	}

	limited := app.rateLimitMiddleware()
	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteBoard, app.boardHandler)
	router.POST(RouteSelectTile, limited, app.selectTileHandler)
	router.POST(RouteAnswer, limited, app.answerHandler)
	router.POST(RouteCloseDialog, app.closeDialogHandler)
	router.POST(RouteContinue, limited, app.continueHandler)
	router.GET(RouteNewGame, app.newGameHandler)
	router.POST(RouteNewGame, limited, app.newGameHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func (app *App) startServer(ctx context.Context, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", app.Config.Port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
