package portfolio

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	contactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_submissions_total", Help: "Contact form submissions by outcome."},
		[]string{"outcome"},
	)
	adminLogins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "admin_logins_total", Help: "Admin login attempts by outcome."},
		[]string{"outcome"},
	)
)

func registerCollectors(reg prometheus.Registerer) {
	reg.MustRegister(contactSubmissions)
	reg.MustRegister(adminLogins)
}
