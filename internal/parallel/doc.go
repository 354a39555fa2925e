// Package parallel provides the worker pool and row banding used by the
// CPU renderer to shade large frames on several goroutines.
package parallel
