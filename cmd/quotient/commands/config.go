package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and change the stored CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")
			if token != "" {
				token = "***"
			} else {
				token = NotAvailable
			}

			settings := map[string]string{
				"api":    viper.GetString("api"),
				"token":  token,
				"output": viper.GetString("output"),
			}

			if handled, err := OutputStructured(settings); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")
			_ = table.Append("api", settings["api"])
			_ = table.Append("token", settings["token"])
			_ = table.Append("output", settings["output"])

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], args[1])

			if err := viper.WriteConfig(); err != nil {
				if err := viper.SafeWriteConfig(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}
