// Package progress defines the two-level progress-reporting contract a
// long-running build publishes to an injected observer: a Reporter
// opens a named stage (e.g. "build sample", "build tile") and receives
// back an Observer that the stage then drives with a monotone stream
// of Update values.
//
// The contract has exactly two methods split across two small
// interfaces — Reporter.BeginStage and Observer.Update — so that a host
// (terminal progress bar, GUI sink, or a null sink for tests) can
// implement it without pulling in this package's own concerns.
package progress
