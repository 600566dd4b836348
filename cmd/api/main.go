// @title           Proposal Feedback API
// @version         1.0
// @description     Rubric check, reference retrieval and AI feedback for student civic proposals.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/data/store"
	"github.com/akolanti/ProposalFeedback/internal/domain/proposalModel"
	"github.com/akolanti/ProposalFeedback/internal/handlers"
	"github.com/akolanti/ProposalFeedback/internal/mcpserver"
	"github.com/akolanti/ProposalFeedback/internal/metrics"
	"github.com/akolanti/ProposalFeedback/internal/middleware"
	"github.com/akolanti/ProposalFeedback/internal/rag"
	"github.com/akolanti/ProposalFeedback/internal/rag/ingest"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm/backend"
	"github.com/akolanti/ProposalFeedback/internal/rag/prompt"
	"github.com/akolanti/ProposalFeedback/internal/server"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

const version = "1.0.0"

var (
	configPath string
	listenAddr string
)

func main() {
	flag.StringVar(&configPath, "config", "config.yaml", "optional YAML settings file")
	flag.StringVar(&listenAddr, "listen-addr", "", "server listen address, overrides config and PORT")
	flag.Parse()

	settings, err := config.Load(configPath)
	logger_i.Init(settings.IsProd)
	var logger = logger_i.NewLogger("main")
	if err != nil {
		logger.Error("Could not read settings", "path", configPath, "error", err)
		os.Exit(1)
	}
	if listenAddr != "" {
		settings.ListenAddr = listenAddr
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//corpus loads in the background, requests see an empty corpus until it is published
	holder := ingest.NewHolder()
	go loadCorpus(serviceContext, settings.CorpusDir, holder, logger)

	composer, err := prompt.NewComposer()
	if err != nil {
		logger.Error("Prompt templates are broken", "error", err)
		os.Exit(1)
	}
	llmProvider := backend.New(serviceContext, settings.Completion)
	logger.Info("Completion backend selected", "backend", llmProvider.Name())

	ragService := rag.NewService(holder, composer, llmProvider, rag.Options{
		Keywords: settings.Retrieval.Keywords,
		TopK:     settings.Retrieval.TopK,
	})

	handlers.InitFeedbackHandler(ragService)
	handlers.InitProposalHandler(proposalStore(serviceContext, settings.Redis, logger))
	handlers.InitConfigHandler(settings.Client)
	middleware.Init(settings.AuthToken)
	if settings.AuthToken == "" {
		logger.Warn("AUTH_TOKEN is empty, every route is public")
	}

	mcpHandler := mcpserver.Handler(mcpserver.New(ragService, version))

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(settings.ListenAddr, mcpHandler)

	<-stopExecution
	logger.Info("Server stopped")
}

func loadCorpus(ctx context.Context, dir string, holder *ingest.Holder, logger *logger_i.Logger) {
	corpus, outcome := ingest.LoadCorpus(ctx, dir)
	if outcome == ingest.Cancelled {
		logger.Warn("Corpus load cancelled")
		return
	}
	holder.Publish(corpus)
	metrics.SetCorpusSize(corpus.Len(), corpus.ParagraphCount())
	logger.Info("Corpus ready", "outcome", outcome, "documents", corpus.Len(), "paragraphs", corpus.ParagraphCount())
}

func proposalStore(ctx context.Context, cfg config.RedisConfig, logger *logger_i.Logger) proposalModel.ProposalStore {
	if redisProposals := store.GetRedisProposalStore(ctx, cfg); redisProposals != nil {
		return redisProposals
	}
	logger.Warn("Redis store is offline, proposals are kept in memory")
	return store.InitInMemoryProposalStore()
}
