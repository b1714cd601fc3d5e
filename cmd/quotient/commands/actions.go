package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
)

// NewActionsCommand creates the integration actions command group
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "Manage integration actions",
		Long:    "List, inspect, and queue work items for a managed integration",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())
	cmd.AddCommand(newActionsCreateCommand())
	cmd.AddCommand(newActionsSetStatusCommand())
	cmd.AddCommand(newActionsDefinitionsCommand())

	return cmd
}

func actionStatus(a *quotient.IntegrationAction) string {
	if status, ok := a.Status.Value(); ok {
		return string(status)
	}

	return NotAvailable
}

func newActionsListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list INTEGRATION_UUID",
		Short: "List actions for a managed integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := quotient.NewQueryParams()
			if status != "" {
				params = params.WithFilter("status", status)
			}

			actions, err := client.IntegrationActions().List(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(actions); handled {
				return err
			}

			if len(actions) == 0 {
				fmt.Println("No integration actions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("UUID", "Type", "Entity", "Status")

			for i := range actions {
				_ = table.Append(
					optOrNA(actions[i].UUID),
					actions[i].Type,
					actions[i].EntityID,
					actionStatus(&actions[i]),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newActionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INTEGRATION_UUID ACTION_UUID",
		Short: "Fetch an integration action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := client.IntegrationActions().Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(action); handled {
				return err
			}

			message := NotAvailable
			if m, ok := action.StatusMessage.Value(); ok {
				message = m
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("UUID", optOrNA(action.UUID))
			_ = table.Append("Type", action.Type)
			_ = table.Append("Entity", action.EntityID)
			_ = table.Append("Status", actionStatus(action))
			_ = table.Append("Message", message)
			_ = table.Append("Created", strOrNA(action.Created))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newActionsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create INTEGRATION_UUID TYPE ENTITY_ID",
		Short: "Queue an integration action",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] == "" {
				return ErrTypeRequired
			}

			if args[2] == "" {
				return ErrEntityIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action := &quotient.IntegrationAction{
				Type:     args[1],
				EntityID: args[2],
			}

			err = client.IntegrationActions().Create(cmd.Context(), args[0], action)
			if err != nil {
				return err
			}

			fmt.Printf("Created action %s\n", optOrNA(action.UUID))

			return nil
		},
	}
}

func newActionsSetStatusCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "set-status INTEGRATION_UUID ACTION_UUID STATUS",
		Short: "Update the status of an integration action",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := client.IntegrationActions().Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			action.Status = quotient.Set(quotient.IntegrationActionStatus(args[2]))
			if message != "" {
				action.StatusMessage = quotient.Set(message)
			}

			err = client.IntegrationActions().Update(cmd.Context(), args[0], action)
			if err != nil {
				return err
			}

			fmt.Printf("Action %s is now %s\n", args[1], actionStatus(action))

			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "status message")

	return cmd
}

func newActionsDefinitionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "definitions INTEGRATION_UUID",
		Short: "List configured action types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			definitions, err := client.IntegrationActions().ListDefinitions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(definitions); handled {
				return err
			}

			if len(definitions) == 0 {
				fmt.Println("No action definitions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("UUID", "Name", "Type", "Related Object")

			for _, def := range definitions {
				_ = table.Append(def.UUID, def.Name, def.Type, strOrNA(def.RelatedObjectType))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
