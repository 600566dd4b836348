package handlers

import (
	"net/http"

	"github.com/akolanti/ProposalFeedback/internal/config"
)

var clientConfig config.ClientConfig

func InitConfigHandler(client config.ClientConfig) {
	clientConfig = client
}

// GetConfigHandler godoc
// @Summary      Browser configuration
// @Description  Public keys the page needs for the map widget and Firebase. Never fails.
// @Tags         Client
// @Produce      json
// @Success      200  {object}  config.ClientConfig
// @Router       /config [get]
func GetConfigHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, clientConfig)
}

// MethodNotAllowedHandler answers CORS preflight requests for known routes, the headers are set
// by the middleware. Any other method mismatch is a 405.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed.")
}
