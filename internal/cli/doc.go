// Package cli defines the multi-converter command line and wires dependencies for subcommands.
//
// Commands
//
//   - (none)   Open the converter window
//   - convert  Run one conversion against the service
//   - health   Check the service once
//   - units    Print the selector options per category
//   - info     Print the service description
//
// The root command resolves configuration (defaults, optional YAML file, flags)
// and builds the logger and API client before any subcommand runs.
package cli
