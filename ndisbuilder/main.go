package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lxc/ndisbuilder/shared"
	"github.com/lxc/ndisbuilder/windows"
)

type cmdGlobal struct {
	flagConfig  string
	flagConfDir string
	flagDebug   bool

	config *shared.Config
	logger *logrus.Logger
}

func main() {
	// Global flags
	globalCmd := cmdGlobal{}

	app := &cobra.Command{
		Use:   "ndisbuilder",
		Short: "Configuration builder for ndiswrapper drivers",
		Long: `Resolves Windows NDIS driver INF files into the configuration
directory layout used by ndiswrapper's loadndisdriver.`,
		PersistentPreRunE: globalCmd.preRun,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
	}

	app.PersistentFlags().StringVarP(&globalCmd.flagConfig, "config", "c", "",
		"Configuration file"+"``")
	app.PersistentFlags().StringVarP(&globalCmd.flagConfDir, "conf-dir", "o", "",
		"Configuration directory (default "+shared.DefaultConfDir+")"+"``")
	app.PersistentFlags().BoolVar(&globalCmd.flagDebug, "debug", false, "Enable debug output")

	installCmd := cmdInstall{global: &globalCmd}
	app.AddCommand(installCmd.command())

	removeCmd := cmdRemove{global: &globalCmd}
	app.AddCommand(removeCmd.command())

	listCmd := cmdList{global: &globalCmd}
	app.AddCommand(listCmd.command())

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func (c *cmdGlobal) preRun(cmd *cobra.Command, args []string) error {
	var err error

	c.logger, err = shared.GetLogger(c.flagDebug)
	if err != nil {
		return fmt.Errorf("Failed to get logger: %w", err)
	}

	c.config, err = shared.LoadConfig(c.flagConfig)
	if err != nil {
		return fmt.Errorf("Failed to load config: %w", err)
	}

	// Flags override the configuration file
	if c.flagConfDir != "" {
		c.config.ConfDir = c.flagConfDir
	}

	return nil
}

func (c *cmdGlobal) installer(altInstall bool) *windows.Installer {
	return windows.NewInstaller(c.config.ConfDir, altInstall || c.config.AltInstall, c.logger)
}
