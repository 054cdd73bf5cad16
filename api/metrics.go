package api

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/helium/helium-tools-api/chain/common"
	"github.com/helium/helium-tools-api/chain/utils/addrconv"
)

const metricsNamespace = "helium_tools"

// Conversion outcomes recorded by the address endpoint.
const (
	outcomeOK          = "ok"
	outcomeMalformed   = "malformed"
	outcomeChecksum    = "checksum_invalid"
	outcomeKeyType     = "unsupported_key_type"
	outcomeNotOnCurve  = "key_not_on_curve"
	outcomeUnsupported = "unsupported_family"
	outcomeUnknown     = "error"
)

// NewRegistry returns a registry preloaded with the Go runtime, process and build info collectors.
func NewRegistry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Metrics holds the collectors updated by the HTTP layer.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	conversions *prometheus.CounterVec
	supplyReads *prometheus.CounterVec
}

// NewMetrics creates the HTTP collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "address",
			Name:      "conversions_total",
			Help:      "Address conversions by target family and outcome.",
		}, []string{"target", "outcome"}),
		supplyReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "supply",
			Name:      "requests_total",
			Help:      "Supply requests by token and kind.",
		}, []string{"token", "kind"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.conversions, m.supplyReads} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeConversion(target string, err error) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(target, conversionOutcome(err)).Inc()
}

func (m *Metrics) observeSupply(token, kind string) {
	if m == nil {
		return
	}
	m.supplyReads.WithLabelValues(token, kind).Inc()
}

func conversionOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, common.ErrMalformedAddress):
		return outcomeMalformed
	case errors.Is(err, common.ErrChecksumInvalid):
		return outcomeChecksum
	case errors.Is(err, common.ErrUnsupportedKeyType):
		return outcomeKeyType
	case errors.Is(err, common.ErrKeyNotOnCurve):
		return outcomeNotOnCurve
	case errors.Is(err, addrconv.ErrUnsupportedFamily):
		return outcomeUnsupported
	default:
		return outcomeUnknown
	}
}
