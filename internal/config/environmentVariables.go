package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 45 * time.Second //has to outlive the completion call
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":8080"

	//request bodies
	MaxRequestBodyBytes = 2 << 20 //2mb, same as the old express json limit

	//corpus
	DefaultCorpusDir      = "data"
	CorpusLoadConcurrency = 4
	PDFPageTimeout        = 10 * time.Second

	//rubric
	RubricMinLength = 10

	//retrieval
	DefaultTopK    = 3
	DomainKeywords = "불법주정차 주차 단속 CCTV 공고 안내 민원"

	//llm
	CompletionTimeout                = 30 * time.Second
	BackendOpenAI                    = "openai"
	BackendGemini                    = "gemini"
	DefaultCompletionBackend         = BackendOpenAI
	OpenAIModelName                  = "gpt-4o-mini"
	GeminiModelName                  = "gemini-2.5-flash-lite-preview-09-2025"
	ModelTemperature         float32 = 0.4

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisProposalStore = 2
	RedisPingTimeout   = 3 * time.Second

	//proposal board
	MaxProposalTitleLength = 100
	MaxListedProposals     = 100
)
