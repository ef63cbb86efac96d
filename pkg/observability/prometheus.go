package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "graphsketch"

// PrometheusHooks records editor, cache and HTTP events as Prometheus metrics.
//
// Metrics (all prefixed with "graphsketch_"):
//
//   - nodes_added_total{color}
//   - node_moves_total{clamped}
//   - edges_total{style}
//   - edge_prompts_cancelled_total
//   - exports_total{status}
//   - export_duration_seconds
//   - cache_requests_total{kind,result}
//   - http_requests_total{host,status}
//
// Safe for concurrent use.
type PrometheusHooks struct {
	nodesAdded      *prometheus.CounterVec
	nodeMoves       *prometheus.CounterVec
	edges           *prometheus.CounterVec
	promptsCanceled prometheus.Counter
	exports         *prometheus.CounterVec
	exportDuration  prometheus.Histogram
	cacheRequests   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
}

// NewPrometheusHooks registers the graphsketch metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registry panics.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusHooks{
		nodesAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_added_total",
			Help:      "Nodes placed on the canvas.",
		}, []string{"color"}),
		nodeMoves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_moves_total",
			Help:      "Drag steps applied to nodes.",
		}, []string{"clamped"}),
		edges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_total",
			Help:      "Edges committed after a confirmed weight prompt.",
		}, []string{"style"}),
		promptsCanceled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edge_prompts_cancelled_total",
			Help:      "Weight prompts dismissed without creating an edge.",
		}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Snapshot exports by outcome.",
		}, []string{"status"}),
		exportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Time spent handing a snapshot to the publisher.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}),
		cacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Render cache lookups and writes.",
		}, []string{"kind", "result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Outgoing HTTP requests by host and status.",
		}, []string{"host", "status"}),
	}
}

func (p *PrometheusHooks) OnNodeAdded(color string) {
	p.nodesAdded.WithLabelValues(color).Inc()
}

func (p *PrometheusHooks) OnNodeMoved(clamped bool) {
	p.nodeMoves.WithLabelValues(strconv.FormatBool(clamped)).Inc()
}

func (p *PrometheusHooks) OnEdgeCommitted(style string, _ bool) {
	p.edges.WithLabelValues(style).Inc()
}

func (p *PrometheusHooks) OnEdgeCancelled() {
	p.promptsCanceled.Inc()
}

func (p *PrometheusHooks) OnExport(_ context.Context, _, _ int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.exports.WithLabelValues(status).Inc()
	p.exportDuration.Observe(d.Seconds())
}

func (p *PrometheusHooks) OnCacheHit(_ context.Context, kind string) {
	p.cacheRequests.WithLabelValues(kind, "hit").Inc()
}

func (p *PrometheusHooks) OnCacheMiss(_ context.Context, kind string) {
	p.cacheRequests.WithLabelValues(kind, "miss").Inc()
}

func (p *PrometheusHooks) OnCacheSet(_ context.Context, kind string, _ int) {
	p.cacheRequests.WithLabelValues(kind, "set").Inc()
}

func (p *PrometheusHooks) OnRequest(context.Context, string, string, string) {}

func (p *PrometheusHooks) OnResponse(_ context.Context, _, host, _ string, statusCode int, _ time.Duration) {
	p.httpRequests.WithLabelValues(host, strconv.Itoa(statusCode)).Inc()
}

func (p *PrometheusHooks) OnError(_ context.Context, _, host, _ string, _ error) {
	p.httpRequests.WithLabelValues(host, "error").Inc()
}

var (
	_ EditorHooks = (*PrometheusHooks)(nil)
	_ CacheHooks  = (*PrometheusHooks)(nil)
	_ HTTPHooks   = (*PrometheusHooks)(nil)
)
