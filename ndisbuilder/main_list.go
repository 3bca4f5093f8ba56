package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type cmdList struct {
	global *cmdGlobal
}

func (c *cmdList) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed drivers",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	return cmd
}

func (c *cmdList) run(cmd *cobra.Command, args []string) error {
	names, err := c.global.installer(false).List()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	return nil
}
