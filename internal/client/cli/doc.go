// Package cli is the interactive front end of the mailtriage client.
//
// It wires configuration, the local session store, the backend client, the
// services and the tab controller, then runs a REPL that renders whatever
// the controller holds. All outcomes reach the user through one notification
// queue which the REPL drains after every command.
//
// While logged out only help, login, register and exit are accepted. Once a
// session exists the REPL lands on the dashboard and accepts tab switches,
// classify, feedback, upload, retrain, show and logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
