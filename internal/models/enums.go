package models

import (
	"fmt"
	"strings"
)

// ThreatType is the kind of environmental threat an incident reports.
type ThreatType string

const (
	ThreatFire               ThreatType = "fire"
	ThreatDeforestation      ThreatType = "deforestation"
	ThreatIllegalLogging     ThreatType = "illegal_logging"
	ThreatCharcoalProduction ThreatType = "charcoal_production"
	ThreatPoaching           ThreatType = "poaching"
	ThreatOther              ThreatType = "other"
)

// ThreatTypes lists every threat type in menu order.
var ThreatTypes = []ThreatType{
	ThreatFire,
	ThreatDeforestation,
	ThreatIllegalLogging,
	ThreatCharcoalProduction,
	ThreatPoaching,
	ThreatOther,
}

func (t ThreatType) Valid() bool {
	switch t {
	case ThreatFire, ThreatDeforestation, ThreatIllegalLogging,
		ThreatCharcoalProduction, ThreatPoaching, ThreatOther:
		return true
	}
	return false
}

// Label renders the threat type for humans, e.g. "ILLEGAL LOGGING".
func (t ThreatType) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(t), "_", " "))
}

func ParseThreatType(s string) (ThreatType, error) {
	t := ThreatType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown threat type %q", s)
	}
	return t, nil
}

// Severity is ordered low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank returns the position of the severity in its ordering, or -1 if invalid.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	}
	return -1
}

func (s Severity) Valid() bool { return s.Rank() >= 0 }

func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

// Source is the intake channel that produced an incident.
type Source string

const (
	SourceApp       Source = "app"
	SourceSMS       Source = "sms"
	SourceUSSD      Source = "ussd"
	SourceSatellite Source = "satellite"
)

func (s Source) Valid() bool {
	switch s {
	case SourceApp, SourceSMS, SourceUSSD, SourceSatellite:
		return true
	}
	return false
}

// IncidentStatus is a state of the incident lifecycle.
type IncidentStatus string

const (
	StatusReported   IncidentStatus = "reported"
	StatusAssigned   IncidentStatus = "assigned"
	StatusEnRoute    IncidentStatus = "en_route"
	StatusOnScene    IncidentStatus = "on_scene"
	StatusResolved   IncidentStatus = "resolved"
	StatusFalseAlarm IncidentStatus = "false_alarm"
)

var IncidentStatuses = []IncidentStatus{
	StatusReported, StatusAssigned, StatusEnRoute, StatusOnScene, StatusResolved, StatusFalseAlarm,
}

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusReported, StatusAssigned, StatusEnRoute, StatusOnScene, StatusResolved, StatusFalseAlarm:
		return true
	}
	return false
}

// HasRanger reports whether an incident in this status must carry an assigned ranger.
func (s IncidentStatus) HasRanger() bool {
	switch s {
	case StatusAssigned, StatusEnRoute, StatusOnScene, StatusResolved:
		return true
	}
	return false
}

// Open reports whether the incident still needs attention.
func (s IncidentStatus) Open() bool {
	return s != StatusResolved && s != StatusFalseAlarm
}

func ParseIncidentStatus(s string) (IncidentStatus, error) {
	st := IncidentStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown incident status %q", s)
	}
	return st, nil
}

// RangerStatus is the duty state of a ranger.
type RangerStatus string

const (
	RangerAvailable RangerStatus = "available"
	RangerOnDuty    RangerStatus = "on_duty"
	RangerEnRoute   RangerStatus = "en_route"
	RangerOnScene   RangerStatus = "on_scene"
	RangerOffDuty   RangerStatus = "off_duty"
)

func (s RangerStatus) Valid() bool {
	switch s {
	case RangerAvailable, RangerOnDuty, RangerEnRoute, RangerOnScene, RangerOffDuty:
		return true
	}
	return false
}

// HoldsIncident reports whether a ranger in this status points at an incident.
func (s RangerStatus) HoldsIncident() bool {
	return s == RangerEnRoute || s == RangerOnScene
}

// ResponseKind is the intent of a community reply.
type ResponseKind string

const (
	ResponseSafe       ResponseKind = "SAFE"
	ResponseNeedHelp   ResponseKind = "NEED_HELP"
	ResponseEvacuating ResponseKind = "EVACUATING"
	ResponseOther      ResponseKind = "OTHER"
)

func (k ResponseKind) Valid() bool {
	switch k {
	case ResponseSafe, ResponseNeedHelp, ResponseEvacuating, ResponseOther:
		return true
	}
	return false
}

// Channel is the transport a community reply arrived on.
type Channel string

const (
	ChannelSMS  Channel = "sms"
	ChannelUSSD Channel = "ussd"
	ChannelApp  Channel = "app"
)
