// Package cli is the interactive Triply client.
//
// App wires configuration, the local cache, the API client and the services,
// then runs a line-oriented REPL. Login falls back to the offline cache when
// the server cannot be reached, and a background watcher flips the session
// between online and offline as reachability changes.
//
// Commands work on the trip opened with "open"; items and checklist entries
// are addressed by the numbers shown next to them.
package cli
