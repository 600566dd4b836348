package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var feedbackOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "feedback_outcomes_total",
	Help: "Feedback requests by outcome (generated, unconfigured, failed)",
}, []string{"outcome", "mode"})

var emptyRetrievals = promauto.NewCounter(prometheus.CounterOpts{
	Name: "feedback_empty_retrievals_total",
	Help: "Feedback requests where no corpus paragraph matched",
})

var corpusDocuments = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "corpus_documents",
	Help: "Number of reference documents loaded at startup",
})

var corpusParagraphs = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "corpus_paragraphs",
	Help: "Number of paragraphs across all loaded documents",
})

var proposalVotes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "proposal_votes_total",
	Help: "Votes cast on the proposal board",
})

// HttpStatusRecorder remembers the status code written by the wrapped handler.
type HttpStatusRecorder struct {
	http.ResponseWriter
	Status  int
	Written bool
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	if r.Written {
		return
	}
	r.Status = code
	r.Written = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *HttpStatusRecorder) Write(b []byte) (int, error) {
	if !r.Written {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

func (r *HttpStatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of each feedback pipeline step and external call.",
	Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"service"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "feedback_request_duration_seconds",
	Help:    "Total time spent assembling one feedback record.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"outcome"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureFeedbackMetrics(outcome string, mode string, timeElapsed time.Duration) {
	feedbackOutcomes.WithLabelValues(outcome, mode).Inc()
	requestDuration.WithLabelValues(outcome).Observe(timeElapsed.Seconds())
}

func IncrementEmptyRetrievals() {
	emptyRetrievals.Inc()
}

func SetCorpusSize(documents int, paragraphs int) {
	corpusDocuments.Set(float64(documents))
	corpusParagraphs.Set(float64(paragraphs))
}

func IncrementProposalVotes() {
	proposalVotes.Inc()
}
