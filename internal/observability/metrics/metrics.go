package metrics

import (
	"easymed-booking/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics exposes counters/histograms for search, booking and notification flows.
type BookingMetrics struct {
	searchTotal         *prometheus.CounterVec
	searchResults       prometheus.Histogram
	slotTogglesTotal    prometheus.Counter
	bookingsTotal       *prometheus.CounterVec
	notificationsTotal  *prometheus.CounterVec
	favoriteChangeTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		searchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easymed",
			Subsystem: "catalog",
			Name:      "search_total",
			Help:      "Total doctor searches by sort key",
		}, []string{"sort"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "easymed",
			Subsystem: "catalog",
			Name:      "search_results",
			Help:      "Number of doctors returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		slotTogglesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "easymed",
			Subsystem: "availability",
			Name:      "slot_toggles_total",
			Help:      "Total slot availability toggles",
		}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easymed",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total booking requests by outcome",
		}, []string{"status"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easymed",
			Subsystem: "notify",
			Name:      "sent_total",
			Help:      "Total notification sends by kind and outcome",
		}, []string{"kind", "status"}),
		favoriteChangeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easymed",
			Subsystem: "favorites",
			Name:      "changes_total",
			Help:      "Total favorites mutations",
		}, []string{"action"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.searchTotal, m.searchResults, m.slotTogglesTotal, m.bookingsTotal, m.notificationsTotal, m.favoriteChangeTotal)
	return m
}

func (m *BookingMetrics) ObserveSearch(sortKey string, results int) {
	if m == nil {
		return
	}
	m.searchTotal.WithLabelValues(sortKey).Inc()
	m.searchResults.Observe(float64(results))
}

func (m *BookingMetrics) ObserveSlotToggle() {
	if m == nil {
		return
	}
	m.slotTogglesTotal.Inc()
}

func (m *BookingMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveNotification(kind string, success bool) {
	if m == nil {
		return
	}
	status := "failed"
	if success {
		status = "sent"
	}
	// Free-text kinds share one label value
	if !entity.NotificationType(kind).IsValid() {
		kind = "other"
	}
	m.notificationsTotal.WithLabelValues(kind, status).Inc()
}

func (m *BookingMetrics) ObserveFavoriteChange(action string) {
	if m == nil {
		return
	}
	m.favoriteChangeTotal.WithLabelValues(action).Inc()
}
