package flightops

import "github.com/aerologix/flightops/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `flightops`
// package, while still providing convenient `flightops.Severity`,
// `flightops.AlertEvent`, etc. for users.
type (
	Severity         = types.Severity
	Role             = types.Role
	CrewMember       = types.CrewMember
	Flight           = types.Flight
	FlightLog        = types.FlightLog
	Assignment       = types.Assignment
	Issue            = types.Issue
	IssueType        = types.IssueType
	Summary          = types.Summary
	AssignmentResult = types.AssignmentResult
	AlertEvent       = types.AlertEvent
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Clock            = types.Clock
	CrewSelector     = types.CrewSelector
	FlightSource     = types.FlightSource
	Evaluator        = types.Evaluator
	Sink             = types.Sink
)

// Re-export Severity constants from the types subpackage.
const (
	SeverityLow       = types.SeverityLow
	SeverityMedium    = types.SeverityMedium
	SeverityHigh      = types.SeverityHigh
	SeverityCritical  = types.SeverityCritical
	SeverityEmergency = types.SeverityEmergency
)

// Re-export role and issue constants from the types subpackage.
const (
	RolePilot     = types.RolePilot
	RoleAttendant = types.RoleAttendant

	IssueDoubleBooking = types.IssueDoubleBooking
	IssueCrewShortage  = types.IssueCrewShortage
)
