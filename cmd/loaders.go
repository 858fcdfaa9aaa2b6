package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadersCmd represents the loaders command
var loadersCmd = &cobra.Command{
	Use:   "loaders",
	Short: "Inspect the loader registry",
}

// loadersListCmd represents the loaders list command
var loadersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered loaders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(".")
		if err != nil {
			return err
		}
		reg := a.locator.Registry()
		for _, name := range reg.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// loadersResolveCmd represents the loaders resolve command
var loadersResolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a loader and print its implementation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(".")
		if err != nil {
			return err
		}
		l, err := a.locator.Registry().Resolve(args[0], a.locator)
		if err != nil {
			return err
		}
		a.logger.Debug("Loader resolved", zap.String("loader", args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %T\n", args[0], l)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadersCmd)
	loadersCmd.AddCommand(loadersListCmd, loadersResolveCmd)
}
