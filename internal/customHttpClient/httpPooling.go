package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/ProposalFeedback/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

var customTransport = &http.Transport{
	Proxy:               http.ProxyFromEnvironment,
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetClient is shared by every outbound completion call so connections to the backend are reused.
// The timeout is the hard cap on one completion.
func GetClient() *http.Client {
	once.Do(func() {
		client = &http.Client{
			Transport: customTransport,
			Timeout:   config.CompletionTimeout,
		}
	})
	return client
}
