package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	claimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certificate_claims_total",
			Help: "Total number of certificate claim attempts by outcome",
		},
		[]string{"outcome"}, // persisted, rejected, not_found, error
	)

	certificatesIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "certificates_issued_total",
			Help: "Total number of certificates issued",
		},
	)

	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certificate_renders_total",
			Help: "Total number of certificate renders by export format",
		},
		[]string{"format"}, // png, card, pdf
	)

	rosterRowsImportedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roster_rows_imported_total",
			Help: "Total number of attendee rows imported",
		},
	)

	databaseConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

var once sync.Once

func init() {
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(claimsTotal)
	prometheus.MustRegister(certificatesIssuedTotal)
	prometheus.MustRegister(rendersTotal)
	prometheus.MustRegister(rosterRowsImportedTotal)
	prometheus.MustRegister(databaseConnectionsActive)
	prometheus.MustRegister(databaseConnectionsIdle)

	once.Do(func() {
		_ = prometheus.Register(prometheus.NewGoCollector())
		_ = prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	})
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAPIRequest records one HTTP request
func RecordAPIRequest(method, path string, status int, duration float64) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("%d", status)
	}
	apiRequestsTotal.WithLabelValues(method, path, statusText).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordClaim records a claim attempt outcome
func RecordClaim(outcome string) {
	claimsTotal.WithLabelValues(outcome).Inc()
}

// RecordCertificateIssued records a successful mint
func RecordCertificateIssued() {
	certificatesIssuedTotal.Inc()
}

// RecordRender records a certificate export
func RecordRender(format string) {
	rendersTotal.WithLabelValues(format).Inc()
}

// RecordRosterRows records imported attendee rows
func RecordRosterRows(n int) {
	rosterRowsImportedTotal.Add(float64(n))
}

// UpdateDatabaseConnections refreshes the DB pool gauges
func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	databaseConnectionsActive.Set(float64(stats.OpenConnections - stats.Idle))
	databaseConnectionsIdle.Set(float64(stats.Idle))

	return nil
}
