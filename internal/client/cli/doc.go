// Package cli provides the interactive Luca command-line client.
//
// It wires configuration, the secret store, the backend transport and the
// session service, then runs a REPL over them. Besides the account commands
// (register, login, logout, me, delete-account, accounts, forgot, reset,
// health) it offers "assess", which walks a clinician through unit, age,
// vital signs and signs/symptoms and prints a summary.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
