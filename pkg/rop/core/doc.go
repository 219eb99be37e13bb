// Package core contains pipeline plumbing: channel helpers, worker
// configuration via context, and the locomotive that drives a stage over a
// channel on several goroutines. It holds no parsing logic; package batch
// builds on it to run parsers concurrently.
package core
