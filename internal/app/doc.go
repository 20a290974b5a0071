// Package app wires application dependencies for the CLI.
//
// It loads Config from the TOML file in the home directory, builds the zap
// logger and exposes both through App for commands to use.
package app
