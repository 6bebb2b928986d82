package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "regportal_submissions_total",
	Help: "Registration submissions by outcome.",
}, []string{"outcome"})
