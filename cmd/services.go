package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// servicesCmd represents the services command
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Inspect service definitions",
}

// servicesListCmd represents the services list command
var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List defined services and their loader",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(".")
		if err != nil {
			return err
		}
		for _, def := range a.locator.Definitions() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", def.Name, def.Loader)
		}
		return nil
	},
}

var getCount int

// servicesGetCmd represents the services get command
var servicesGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get a service through its loader",
	Long:  `Gets a service one or more times. Services on the default loader yield a new value per get, singleton services repeat the first.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(".")
		if err != nil {
			return err
		}
		for i := 0; i < getCount; i++ {
			v, err := a.locator.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(servicesCmd)
	servicesCmd.AddCommand(servicesListCmd, servicesGetCmd)

	servicesGetCmd.Flags().IntVarP(&getCount, "count", "n", 1, "Number of times to get the service")
}
