// Package schedule implements the crew assignment engine, the conflict
// detector and the batch summary.
//
// The engine is the only component that mutates the crew roster. Each call
// to Engine.Assign processes a whole batch of flights under a single mutex,
// so concurrent callers (e.g., the periodic crew monitor and a CLI
// invocation) are serialized at the batch boundary.
//
// Conflict detection is deliberately a post-hoc audit pass rather than an
// allocation-time constraint: the engine can hand overlapping-availability
// members to two flights in the same batch when the pool is small, and
// Detect reports those overlaps as DOUBLE_BOOKING issues.
package schedule
