// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the deployconf tool: a
// small command tree over pflag with synthesized help output,
// closest-match suggestions for unknown subcommands, JSON output
// helpers, and the exit-code protocol main relies on.
//
// Commands declare Name, Summary, Description, optional Examples and
// a Flags constructor; Execute dispatches by the first positional
// argument. A command that has already written its own output can
// return [ExitError] to set the process exit code without an extra
// error line.
package cli
