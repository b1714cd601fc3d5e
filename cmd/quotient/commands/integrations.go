package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
)

// NewIntegrationsCommand creates the integrations command group
func NewIntegrationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "integrations",
		Aliases: []string{"integration"},
		Short:   "Manage ERP integrations",
		Long:    "List, register, and report liveness for managed ERP integrations",
	}

	cmd.AddCommand(newIntegrationsListCommand())
	cmd.AddCommand(newIntegrationsGetCommand())
	cmd.AddCommand(newIntegrationsCreateCommand())
	cmd.AddCommand(newIntegrationsHeartbeatCommand())

	return cmd
}

func newIntegrationsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed integrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			integrations, err := client.ManagedIntegrations().List(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(integrations); handled {
				return err
			}

			if len(integrations) == 0 {
				fmt.Println("No managed integrations found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("UUID", "ERP", "Version", "Active")

			for _, mi := range integrations {
				_ = table.Append(
					optOrNA(mi.UUID),
					mi.ERPName,
					optOrNA(mi.ERPVersion),
					strconv.FormatBool(mi.IsActive),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newIntegrationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get UUID",
		Short: "Fetch a managed integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mi, err := client.ManagedIntegrations().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(mi); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("UUID", optOrNA(mi.UUID))
			_ = table.Append("ERP", mi.ERPName)
			_ = table.Append("ERP Version", optOrNA(mi.ERPVersion))
			_ = table.Append("Integration Version", optOrNA(mi.IntegrationVersion))
			_ = table.Append("Active", strconv.FormatBool(mi.IsActive))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newIntegrationsCreateCommand() *cobra.Command {
	var (
		erpName    string
		erpVersion string
		active     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a managed integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if erpName == "" {
				return ErrERPNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			mi := &quotient.ManagedIntegration{
				ERPName:  erpName,
				IsActive: active,
			}

			if erpVersion != "" {
				mi.ERPVersion = quotient.Set(erpVersion)
			}

			err = client.ManagedIntegrations().Create(cmd.Context(), mi)
			if err != nil {
				return err
			}

			fmt.Printf("Created managed integration %s\n", optOrNA(mi.UUID))

			return nil
		},
	}

	cmd.Flags().StringVar(&erpName, "erp-name", "", "name of the ERP system")
	cmd.Flags().StringVar(&erpVersion, "erp-version", "", "version of the ERP system")
	cmd.Flags().BoolVar(&active, "active", true, "whether the integration is active")

	return cmd
}

func newIntegrationsHeartbeatCommand() *cobra.Command {
	var interval int

	cmd := &cobra.Command{
		Use:   "heartbeat UUID",
		Short: "Report integration liveness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ManagedIntegrations().Heartbeat(cmd.Context(), args[0], interval)
			if err != nil {
				return err
			}

			fmt.Printf("Heartbeat sent for %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 900, "seconds until the next expected heartbeat")

	return cmd
}
