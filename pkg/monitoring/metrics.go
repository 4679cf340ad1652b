package monitoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
	CacheHit        = "hit"
	CacheMiss       = "miss"
)

// Collector owns the service's Prometheus metrics. All recording methods are
// safe to call on a nil *Collector so callers never need to guard.
type Collector struct {
	serviceName string
	registry    *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	evaluationsTotal *prometheus.CounterVec
	formulaFailures  prometheus.Counter
	dashboardRenders *prometheus.HistogramVec
	dashboardCache   *prometheus.CounterVec
	reportRunsTotal  *prometheus.CounterVec
	eventsConsumed   *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector(serviceName, version string) *Collector {
	name := strings.ReplaceAll(serviceName, "-", "_")
	mc := &Collector{
		serviceName: name,
		registry:    prometheus.NewRegistry(),
	}

	mc.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name + "_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "endpoint", "status"})

	mc.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name + "_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	mc.evaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name + "_metric_evaluations_total",
		Help: "Metric mapping evaluations by calculation type and outcome",
	}, []string{"calculation", "outcome"})

	mc.formulaFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: name + "_formula_failures_total",
		Help: "Custom formulas that failed to parse or evaluate and yielded 0",
	})

	mc.dashboardRenders = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name + "_dashboard_render_duration_seconds",
		Help:    "Dashboard render duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"cache"})

	mc.dashboardCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name + "_dashboard_cache_total",
		Help: "Dashboard render cache lookups",
	}, []string{"result"})

	mc.reportRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name + "_report_runs_total",
		Help: "Finished report runs by status",
	}, []string{"status"})

	mc.eventsConsumed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name + "_events_consumed_total",
		Help: "Messages consumed by source and outcome",
	}, []string{"source", "outcome"})

	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name + "_service_info",
		Help: "Service information",
	}, []string{"version"})
	info.WithLabelValues(version).Set(1)

	mc.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		mc.httpRequestsTotal,
		mc.httpRequestDuration,
		mc.evaluationsTotal,
		mc.formulaFailures,
		mc.dashboardRenders,
		mc.dashboardCache,
		mc.reportRunsTotal,
		mc.eventsConsumed,
		info,
	)

	return mc
}

// Registry exposes the underlying registry, mainly for tests.
func (mc *Collector) Registry() *prometheus.Registry {
	if mc == nil {
		return nil
	}
	return mc.registry
}

// Middleware records request counts and latency per route.
func (mc *Collector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		mc.httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		mc.httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (mc *Collector) Handler() gin.HandlerFunc {
	var registry *prometheus.Registry
	if mc != nil {
		registry = mc.registry
	} else {
		registry = prometheus.NewRegistry()
	}
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

func (mc *Collector) ObserveEvaluation(calculation, outcome string) {
	if mc == nil {
		return
	}
	mc.evaluationsTotal.WithLabelValues(calculation, outcome).Inc()
}

func (mc *Collector) IncFormulaFailure() {
	if mc == nil {
		return
	}
	mc.formulaFailures.Inc()
}

func (mc *Collector) ObserveDashboardRender(cacheResult string, d time.Duration) {
	if mc == nil {
		return
	}
	mc.dashboardCache.WithLabelValues(cacheResult).Inc()
	mc.dashboardRenders.WithLabelValues(cacheResult).Observe(d.Seconds())
}

func (mc *Collector) IncReportRun(status string) {
	if mc == nil {
		return
	}
	mc.reportRunsTotal.WithLabelValues(status).Inc()
}

func (mc *Collector) IncEventConsumed(source, outcome string) {
	if mc == nil {
		return
	}
	mc.eventsConsumed.WithLabelValues(source, outcome).Inc()
}
