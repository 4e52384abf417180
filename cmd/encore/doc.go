// Package main hosts the Encore CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into schedule
// ingestion runs, stored-schedule maintenance, gap and meetup queries, and
// calendar exports. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
