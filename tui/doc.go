// Package tui is the interactive terminal front end built on bubbletea.
//
// The user types a topic, waits on a spinner while the roadmap is
// generated, then moves a focus cursor over the leaf topics. Enter selects
// a leaf and fetches its video and articles, n writes PDF notes for it into
// the configured directory, d swaps the sections for an ASCII tree, c
// clears the selection and / starts over with a new topic.
//
// All external calls run as tea.Cmds; their results come back to Update as
// messages, and results for a selection that has since changed are
// dropped.
package tui
