package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/akolanti/ProposalFeedback/internal/adapter/utils"
	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/middleware"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

var (
	server     *http.Server
	serverLock sync.Mutex
	_logger    *logger_i.Logger
	loggerOnce sync.Once
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

// RegisterRoutes mounts every public route on r. mcpHandler may be nil.
func RegisterRoutes(r *chi.Mux, mcpHandler http.Handler) {
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler)

	r.Get("/config", middleware.GetConfigHandler)
	r.Post("/api/ai/feedback", middleware.PostFeedbackHandler)
	r.Get("/api/pdfs", middleware.GetDocumentsHandler)

	r.Post("/api/proposals", middleware.CreateProposalHandler)
	r.Get("/api/proposals", middleware.ListProposalsHandler)
	r.Get("/api/proposals/top", middleware.TopProposalHandler)
	r.Post("/api/proposals/{id}/vote", middleware.VoteProposalHandler)

	if mcpHandler != nil {
		r.Handle("/mcp", middleware.WrapLimited(mcpHandler.ServeHTTP))
	}
}

func serverLogger() *logger_i.Logger {
	loggerOnce.Do(func() {
		_logger = logger_i.NewLogger("Server")
	})
	return _logger
}

func CreateServer(listenAddr string, mcpHandler http.Handler) {
	log := serverLogger()

	r := utils.GetRouter()
	RegisterRoutes(r.Router, mcpHandler)

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
	serverLock.Lock()
	server = srv
	serverLock.Unlock()

	log.Info("Server is listening at", "address", listenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
		close(serverCrashed)
	}
}

var serverCrashed = make(chan struct{})

func ShutDownHandler(shutdownParams ShutdownParams) {
	select {
	case state := <-shutdownParams.GracefulShutdown:
		println("\nServer is shutting down", state.String())
	case <-serverCrashed:
	}

	log := serverLogger()
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		serverLock.Lock()
		srv := server
		serverLock.Unlock()
		if srv != nil {
			srv.SetKeepAlivesEnabled(false)
			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Could not shutdown gracefully", "error", err)
			}
		}

		//cancels the corpus load and any redis calls still running
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		log.Info("Gracefully shut down")
	case <-ctx.Done():
		log.Info("Force Shut down")
		os.Exit(1)
	}
}
