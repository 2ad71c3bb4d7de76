// Package mock provides test doubles for the ai package interfaces.
//
// The mocks use injectable function fields: when a Func field is nil,
// a deterministic default is used so tests get stable behavior without
// any setup. Call counts are tracked for assertions.
package mock
