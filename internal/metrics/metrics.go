package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	slotsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "slots_generated_total",
			Help:      "Count of bookable slots returned by availability queries.",
		},
	)

	validations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "validation_total",
			Help:      "Count of booking validations by result (ok or rejection reason).",
		},
		[]string{"result"},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "bookings_total",
			Help:      "Count of booking writes by action.",
		},
		[]string{"action"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotsGenerated, validations, bookings)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func AddSlotsGenerated(n int) {
	slotsGenerated.Add(float64(n))
}

func IncValidation(result string) {
	validations.WithLabelValues(result).Inc()
}

func IncBooking(action string) {
	bookings.WithLabelValues(action).Inc()
}
