// Package metrics exposes Prometheus instrumentation for the case
// lifecycle and the matching flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CaseTransitions counts lifecycle transition attempts by
	// transition name and outcome (ok, conflict, forbidden, error)
	CaseTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "probonex_case_transitions_total",
		Help: "Case lifecycle transition attempts by transition and outcome.",
	}, []string{"transition", "outcome"})

	// MatchQueries counts find-lawyers queries
	MatchQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "probonex_match_queries_total",
		Help: "Lawyer matching queries served.",
	})

	// MatchCandidates observes how many ranked lawyers each matching
	// query produced
	MatchCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "probonex_match_candidates",
		Help:    "Ranked lawyers returned per matching query.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
)

// Outcome labels for CaseTransitions
const (
	OutcomeOK        = "ok"
	OutcomeConflict  = "conflict"
	OutcomeForbidden = "forbidden"
	OutcomeError     = "error"
)
