package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type cmdInstall struct {
	global *cmdGlobal

	flagAlt bool
}

func (c *cmdInstall) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <inf-file>",
		Short: "Install the driver described by an INF file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cmd.Flags().BoolVarP(&c.flagAlt, "alt", "a", false, "Use alternate output format")

	return cmd
}

func (c *cmdInstall) run(cmd *cobra.Command, args []string) error {
	logger := c.global.logger

	result, err := c.global.installer(c.flagAlt).Install(args[0])
	if err != nil {
		return fmt.Errorf("Failed to install %q: %w", args[0], err)
	}

	merr, ok := result.DeviceErrors.(*multierror.Error)
	if ok {
		for _, err := range merr.Errors {
			logger.WithField("err", err).Warn("Skipped device")
		}
	}

	logger.WithFields(logrus.Fields{
		"driver":  result.Driver,
		"devices": len(result.Confs),
		"links":   len(result.Links),
	}).Info("Installed driver")

	return nil
}
