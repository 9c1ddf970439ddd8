package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RegistrationsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kazrockets_registrations_total",
	Help: "Number of registered users by role",
}, []string{"role"})

var LoginCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kazrockets_logins_total",
	Help: "Number of successful logins",
})

var LoginFailureCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kazrockets_login_failures_total",
	Help: "Number of rejected login attempts",
})

var SubmissionsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kazrockets_submissions_total",
	Help: "Number of submissions created",
})

var EvaluationsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kazrockets_evaluations_total",
	Help: "Number of evaluations recorded",
})

var TeamsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kazrockets_teams_created_total",
	Help: "Number of teams created",
})
