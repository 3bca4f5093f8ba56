package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type cmdRemove struct {
	global *cmdGlobal
}

func (c *cmdRemove) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <driver>",
		Short: "Remove an installed driver",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	return cmd
}

func (c *cmdRemove) run(cmd *cobra.Command, args []string) error {
	err := c.global.installer(false).Remove(args[0])
	if err != nil {
		return fmt.Errorf("Failed to remove driver: %w", err)
	}

	return nil
}
