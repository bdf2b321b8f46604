// Package observability provides prometheus metrics and OpenTelemetry tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EngagementMutations counts engagement set mutations by target and action.
	EngagementMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_engagement_mutations_total",
		Help: "Total engagement mutations by target type and action",
	}, []string{"target", "action"})

	// FollowMutations counts follow graph edge changes by action.
	FollowMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_follow_mutations_total",
		Help: "Total follow edge mutations by action",
	}, []string{"action"})

	// CascadeSteps counts account-deletion cascade step outcomes.
	// A partial cascade shows up as a step with failures but no later successes.
	CascadeSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_account_cascade_steps_total",
		Help: "Account deletion cascade steps by step name and outcome",
	}, []string{"step", "outcome"})
)
