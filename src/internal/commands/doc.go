// Package commands implements the hostsmith CLI subcommands.
package commands
