package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/contactdesk/contactdesk/internal/handler"
	"github.com/contactdesk/contactdesk/internal/logging"
	"github.com/contactdesk/contactdesk/internal/repository"
	"github.com/contactdesk/contactdesk/internal/service"
)

// shutdownGrace bounds how long in-flight requests may run after a
// termination signal before the process force-exits.
const shutdownGrace = 10 * time.Second

func main() {
	_ = godotenv.Load()
	logging.Setup()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logging.Fatal("DATABASE_URL is not set; create .env with DATABASE_URL and restart")
	}

	port := 5002
	if p := os.Getenv("PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 || n > 65535 {
			logging.Fatal("invalid PORT", "port", p)
		}
		port = n
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	rateLimit := 60
	if r := os.Getenv("RATE_LIMIT_PER_MINUTE"); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n > 0 {
			rateLimit = n
		}
	}

	trustedProxies := 0
	if tp := os.Getenv("TRUSTED_PROXY_COUNT"); tp != "" {
		if n, err := strconv.Atoi(tp); err == nil && n >= 0 {
			trustedProxies = n
		}
	}

	pool, err := repository.NewPool(context.Background(), dbURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()
	slog.Info("database connected")

	contactRepo := repository.NewPgContactRepository(pool)
	contactService := service.NewContactService(contactRepo)

	h := handler.New(pool, frontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	limiter := handler.NewRateLimiter(rateLimit, trustedProxies)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.Handle("POST /api/contacts", limiter.Middleware(http.HandlerFunc(contactHandler.Create)))
	mux.HandleFunc("DELETE /api/contacts/{id}", contactHandler.Delete)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      handler.SecurityHeaders(handler.RequestLogger(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		pool.Close()
		logging.Fatal("forced shutdown after grace period", "error", err)
	}
	slog.Info("server stopped")
}
