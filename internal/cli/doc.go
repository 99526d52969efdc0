// Package cli provides the interactive WellNest command-line client.
//
// It wires configuration, the local store, and an interactive REPL. Typical
// flow: seed the testimonial board, restore any persisted session, and
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout (registration logs the user in)
//   - Daily mood check-ins with symptom tags and notes
//   - Rolling weekly summary with a per-day bar chart
//   - Shared testimonial board
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
