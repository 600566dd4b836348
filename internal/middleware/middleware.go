package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/handlers"
	"github.com/akolanti/ProposalFeedback/internal/metrics"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var authToken string

// Init sets the bearer token checked by every wrapped route. Empty disables auth.
func Init(token string) {
	authToken = token
}

var PostFeedbackHandler = WrapLimited(handlers.PostFeedbackHandler)
var GetDocumentsHandler = Wrap(handlers.GetDocumentsHandler)
var GetConfigHandler = Wrap(handlers.GetConfigHandler)
var MethodNotAllowedHandler = Wrap(handlers.MethodNotAllowedHandler)

var CreateProposalHandler = WrapLimited(handlers.CreateProposalHandler)
var ListProposalsHandler = Wrap(handlers.ListProposalsHandler)
var VoteProposalHandler = WrapLimited(handlers.VoteProposalHandler)
var TopProposalHandler = Wrap(handlers.TopProposalHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return wrap(next, false)
}

// WrapLimited also applies the per ip rate limiter, used on routes that cost an upstream call or a write.
func WrapLimited(next http.HandlerFunc) http.HandlerFunc {
	return wrap(next, true)
}

func wrap(next http.HandlerFunc, limited bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec}, limited)

		defer func() {
			if recovered := recover(); recovered != nil {
				re.logger.Error("Recovered from panic", "panic", recovered, "path", r.URL.Path)
				if !rec.Written {
					handlers.WriteErrorResponse(rec, http.StatusInternalServerError, api.ErrorFeedbackFailed)
				} else {
					rec.Status = http.StatusInternalServerError
				}
			}
			metrics.HttpRequestsTotal.WithLabelValues(routeLabel(r), strconv.Itoa(rec.Status)).Inc() //metrics
		}()

		if handleBadRequest(re) {
			return
		}
		next(rec, re.req)
	}
}

func processRequest(re requestResponseStruct, limited bool) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re.logger.Debug("New request received", "method", re.req.Method, "path", re.req.URL.Path)
	re = allowCors(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails
	}
	if limited && re.req.Method != http.MethodOptions {
		re = rateLimiter(re)
	}
	return re
}

func handleBadRequest(re requestResponseStruct) bool {
	if !re.badRequest.isBadRequest {
		return false
	}
	remote := ""
	if re.req != nil {
		remote = re.req.RemoteAddr
	}
	re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", remote)
	handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.badRequest.errorMessage)
	return true
}

// routeLabel prefers the chi pattern so proposal ids don't explode the label set.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
