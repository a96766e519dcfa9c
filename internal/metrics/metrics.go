package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts registration attempts by outcome.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginapi_registrations_total",
		Help: "Registration attempts partitioned by outcome.",
	}, []string{"outcome"})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginapi_logins_total",
		Help: "Login attempts partitioned by outcome.",
	}, []string{"outcome"})

	// UserLookupsTotal counts user fetches by result.
	UserLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginapi_user_lookups_total",
		Help: "User id lookups partitioned by result.",
	}, []string{"result"})

	// UserUpdatesTotal counts update attempts by outcome.
	UserUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loginapi_user_updates_total",
		Help: "User update attempts partitioned by outcome.",
	}, []string{"outcome"})
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeDenied   = "denied"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Lookup result labels. A cache hit and a store hit are counted apart so the
// cache's effectiveness is visible; a missing record is OutcomeNotFound.
const (
	LookupCacheHit = "cache_hit"
	LookupStoreHit = "store_hit"
)
