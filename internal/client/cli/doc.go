// Package cli provides the interactive Student Diary terminal client.
//
// It wires configuration, the local session store, the REST client and the
// page services behind a REPL. Each command belongs to a page (subjects,
// grades, tasks, calendar, assignments, forums); entering a page cancels
// whatever the previous one started, and the to-do page runs a deadline
// watcher for as long as the user stays on it.
//
// "help" only lists what the current role may do. Commands that need a
// session while none exists send the user to the login prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartDeadlineWatcher, and runREPL for details.
package cli
