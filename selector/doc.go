// Package selector provides crew selection policies for the assignment
// engine.
//
// Available selectors:
//   - Random: uniform random selection, matching the reference behavior.
//     Seedable for reproducible runs.
//   - RoundRobin: rotating cursor, fully deterministic.
//   - LeastUtilized: prefers members with the fewest assigned flights.
//
// All selectors uphold the engine's structural guarantees (distinct sample
// indices, in-range picks); only the distribution differs.
package selector
