// Package handler provides flag parsing utilities
package handler

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a positive ID from a flag.
// Failures are usage errors.
func (p *FlagParser) ParseID(flagName string) (int, error) {
	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, cli.NewCommandError(cli.ExitUsage, "INVALID_FLAG", fmt.Sprintf("failed to parse %s flag", flagName), err)
	}
	if id <= 0 {
		return 0, cli.NewCommandError(cli.ExitUsage, "INVALID_FLAG", fmt.Sprintf("%s must be greater than 0", flagName), nil)
	}
	return id, nil
}

// ParseStringOptional extracts an optional string flag as typed, with no trimming
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", cli.NewCommandError(cli.ExitUsage, "INVALID_FLAG", fmt.Sprintf("failed to parse %s flag", flagName), err)
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	value, err := p.cmd.Flags().GetBool(flagName)
	if err != nil {
		return false, cli.NewCommandError(cli.ExitUsage, "INVALID_FLAG", fmt.Sprintf("failed to parse %s flag", flagName), err)
	}
	return value, nil
}
