// Package cli provides the interactive LoginKeeper command-line client.
//
// It wires configuration, the local session store, the backend client and
// the session holder into a small REPL. On start the persisted user is
// loaded, refreshed once from the backend, and a background watcher keeps
// the online/offline mode current.
//
// Commands:
//   - whoami          print the current login user
//   - fetch           refresh the user from the backend
//   - set             replace the user (name or JSON record)
//   - logout          reset to the default user and drop the stored copy
//   - ping, stats     backend health, collected metrics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
