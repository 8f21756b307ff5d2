// Package metrics exposes the Prometheus collectors recorded by the service layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forestlink"

// Label values.
const (
	DispatchAssigned = "assigned"
	DispatchNoRanger = "no_ranger"
	DispatchConflict = "conflict"
	DispatchError    = "error"
	SendResultSent   = "sent"
	SendResultFailed = "failed"
)

var (
	IncidentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incidents_created_total",
		Help:      "Incidents created, by intake source and threat type.",
	}, []string{"source", "threat_type"})

	DispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_outcomes_total",
		Help:      "Ranger dispatch attempts by outcome.",
	}, []string{"outcome"})

	DispatchETAMinutes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_eta_minutes",
		Help:      "Estimated ranger arrival time at assignment.",
		Buckets:   prometheus.LinearBuckets(5, 10, 12),
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Applied incident status transitions.",
	}, []string{"from", "to"})

	TimeToResolution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "time_to_resolution_seconds",
		Help:      "Time from report to resolution.",
		Buckets:   prometheus.ExponentialBuckets(300, 2, 10),
	})

	BroadcastRecipients = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_recipients_total",
		Help:      "Alert SMS sends per recipient, by result.",
	}, []string{"result"})

	HotspotsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "satellite_hotspots_total",
		Help:      "Satellite detections seen by sync, split into accepted and dropped.",
	}, []string{"result"})

	CommunityResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "community_responses_total",
		Help:      "Inbound community replies by classified kind and channel.",
	}, []string{"kind", "channel"})
)
