package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trailbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_bookings_total",
			Help: "Total number of booking attempts",
		},
		[]string{"status"},
	)

	BookingRevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trailbook_booking_revenue_total",
			Help: "Sum of totals across confirmed bookings, in currency units",
		},
	)

	PromoValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_promo_validations_total",
			Help: "Total number of promo code validations",
		},
		[]string{"result"},
	)

	PricingMismatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trailbook_pricing_mismatches_total",
			Help: "Bookings whose client-supplied totals disagreed with the server recomputation",
		},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_catalog_cache_total",
			Help: "Catalog cache lookups",
		},
		[]string{"result"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trailbook_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingRevenue(total int64) {
	if total > 0 {
		BookingRevenueTotal.Add(float64(total))
	}
}

func RecordPromoValidation(result string) {
	PromoValidationsTotal.WithLabelValues(result).Inc()
}

func RecordPricingMismatch() {
	PricingMismatchesTotal.Inc()
}

func RecordCatalogCache(result string) {
	CatalogCacheTotal.WithLabelValues(result).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
