// Package commands defines the rnsid CLI and wires dependencies for subcommands.
//
// Commands
//
//   - verify    Check an identity file against the reference derivation
//   - generate  Create an identity, optionally with a vanity address
//   - inspect   Print the key material and address of an identity file
//
// # Implementation
//
// The root command builds the dependency graph (store, reference deriver,
// services) before any subcommand runs, so handlers share one app context.
// Any command error makes the process exit with status 1.
package commands
