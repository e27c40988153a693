// Package testing provides test utilities for the FlightOps library.
//
// This package offers helpers for setting up test environments, particularly
// an embedded NATS server for exercising the NATS alert sink. It follows
// Go's convention of providing testing utilities in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single in-process NATS server
//   - NewTestLogger: Logger that writes through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    opstest "github.com/aerologix/flightops/testing"
//	)
//
//	func TestMySink(t *testing.T) {
//	    _, nc := opstest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
