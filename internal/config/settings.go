package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings holds everything that may differ between deployments.
// Secrets only ever come from the environment (or a .env file).
type Settings struct {
	IsProd     bool             `yaml:"prod"`
	ListenAddr string           `yaml:"listen_addr"`
	CorpusDir  string           `yaml:"corpus_dir"`
	AuthToken  string           `yaml:"-"`
	Completion CompletionConfig `yaml:"completion"`
	Redis      RedisConfig      `yaml:"redis"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Client     ClientConfig     `yaml:"-"`
}

type CompletionConfig struct {
	Backend      string `yaml:"backend"`
	OpenAIModel  string `yaml:"openai_model"`
	GeminiModel  string `yaml:"gemini_model"`
	OpenAIAPIKey string `yaml:"-"`
	GeminiAPIKey string `yaml:"-"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"-"`
	Disabled bool   `yaml:"disabled"`
}

type RetrievalConfig struct {
	TopK     int    `yaml:"top_k"`
	Keywords string `yaml:"keywords"`
}

// ClientConfig is handed verbatim to the browser, it must never carry server secrets.
type ClientConfig struct {
	KakaoJsKey string         `json:"kakaoJsKey"`
	Firebase   FirebaseConfig `json:"firebase"`
}

type FirebaseConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
	MeasurementID     string `json:"measurementId"`
}

// APIKey returns the credential of the selected completion backend.
func (c CompletionConfig) APIKey() string {
	if c.Backend == BackendGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// APIKeyEnv names the environment variable the selected backend reads its key from.
func (c CompletionConfig) APIKeyEnv() string {
	if c.Backend == BackendGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// Model returns the model name of the selected completion backend.
func (c CompletionConfig) Model() string {
	if c.Backend == BackendGemini {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

func Defaults() Settings {
	return Settings{
		ListenAddr: ServerListenAddr,
		CorpusDir:  DefaultCorpusDir,
		Completion: CompletionConfig{
			Backend:     DefaultCompletionBackend,
			OpenAIModel: OpenAIModelName,
			GeminiModel: GeminiModelName,
		},
		Redis: RedisConfig{Addr: RedisAddr},
		Retrieval: RetrievalConfig{
			TopK:     DefaultTopK,
			Keywords: DomainKeywords,
		},
	}
}

// Load reads an optional YAML file, then a .env file next to the binary, then the environment.
// A missing YAML or .env file is not an error.
func Load(path string) (Settings, error) {
	settings := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return settings, err
		default:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return settings, err
			}
		}
	}

	// existing environment wins over .env
	_ = godotenv.Load()

	applyEnv(&settings)
	applyDefaults(&settings)
	return settings, nil
}

func applyEnv(s *Settings) {
	if port := os.Getenv("PORT"); port != "" {
		s.ListenAddr = ":" + strings.TrimPrefix(port, ":")
	}
	setFromEnv(&s.CorpusDir, "CORPUS_DIR")
	setFromEnv(&s.AuthToken, "AUTH_TOKEN")
	setFromEnv(&s.Completion.Backend, "COMPLETION_BACKEND")
	setFromEnv(&s.Completion.OpenAIModel, "OPENAI_MODEL")
	setFromEnv(&s.Completion.GeminiModel, "GEMINI_MODEL")
	setFromEnv(&s.Completion.OpenAIAPIKey, "OPENAI_API_KEY")
	setFromEnv(&s.Completion.GeminiAPIKey, "GEMINI_API_KEY")
	setFromEnv(&s.Redis.Addr, "REDIS_ADDR")
	setFromEnv(&s.Redis.Password, "REDIS_PASSWORD")
	if os.Getenv("APP_ENV") == "production" {
		s.IsProd = true
	}

	setFromEnv(&s.Client.KakaoJsKey, "KAKAO_JS_KEY")
	setFromEnv(&s.Client.Firebase.APIKey, "FIREBASE_API_KEY")
	setFromEnv(&s.Client.Firebase.AuthDomain, "FIREBASE_AUTH_DOMAIN")
	setFromEnv(&s.Client.Firebase.ProjectID, "FIREBASE_PROJECT_ID")
	setFromEnv(&s.Client.Firebase.StorageBucket, "FIREBASE_STORAGE_BUCKET")
	setFromEnv(&s.Client.Firebase.MessagingSenderID, "FIREBASE_MESSAGING_SENDER_ID")
	setFromEnv(&s.Client.Firebase.AppID, "FIREBASE_APP_ID")
	setFromEnv(&s.Client.Firebase.MeasurementID, "FIREBASE_MEASUREMENT_ID")
}

func applyDefaults(s *Settings) {
	s.Completion.Backend = strings.ToLower(strings.TrimSpace(s.Completion.Backend))
	if s.Completion.Backend != BackendGemini {
		s.Completion.Backend = BackendOpenAI
	}
	if s.Completion.OpenAIModel == "" {
		s.Completion.OpenAIModel = OpenAIModelName
	}
	if s.Completion.GeminiModel == "" {
		s.Completion.GeminiModel = GeminiModelName
	}
	if s.Retrieval.TopK <= 0 {
		s.Retrieval.TopK = DefaultTopK
	}
	if s.Retrieval.Keywords == "" {
		s.Retrieval.Keywords = DomainKeywords
	}
	if s.ListenAddr == "" {
		s.ListenAddr = ServerListenAddr
	}
	if s.CorpusDir == "" {
		s.CorpusDir = DefaultCorpusDir
	}
	if s.Redis.Addr == "" {
		s.Redis.Addr = RedisAddr
	}
}

func setFromEnv(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}
