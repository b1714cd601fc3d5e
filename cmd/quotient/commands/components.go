package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
)

// NewComponentsCommand creates the purchased components command group
func NewComponentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"component"},
		Short:   "Manage the purchased component catalog",
		Long:    "List, search, and edit purchased components and their custom columns",
	}

	cmd.AddCommand(newComponentsListCommand())
	cmd.AddCommand(newComponentsSearchCommand())
	cmd.AddCommand(newComponentsGetCommand())
	cmd.AddCommand(newComponentsCreateCommand())
	cmd.AddCommand(newComponentsBatchCommand())
	cmd.AddCommand(newComponentsDeleteCommand())
	cmd.AddCommand(newComponentsColumnsCommand())

	return cmd
}

func renderComponentsTable(components []quotient.PurchasedComponent) error {
	if len(components) == 0 {
		fmt.Println("No purchased components found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "OEM Part Number", "Piece Price", "Internal Part Number")

	for i := range components {
		id := NotAvailable
		if v, ok := components[i].ID.Value(); ok {
			id = strconv.Itoa(v)
		}

		internal := NotAvailable
		if v, ok := components[i].InternalPartNumber.Value(); ok {
			internal = v
		}

		_ = table.Append(id, components[i].OEMPartNumber, components[i].PiecePrice.String(), internal)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newComponentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List purchased components",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			components, err := client.PurchasedComponents().List(cmd.Context(), nil)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(components); handled {
				return err
			}

			return renderComponentsTable(components)
		},
	}
}

func newComponentsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search purchased components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			components, err := client.PurchasedComponents().Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(components); handled {
				return err
			}

			return renderComponentsTable(components)
		},
	}
}

func newComponentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Fetch a purchased component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			component, err := client.PurchasedComponents().Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(component); handled {
				return err
			}

			return renderComponentsTable([]quotient.PurchasedComponent{*component})
		},
	}
}

func newComponentsCreateCommand() *cobra.Command {
	var (
		internalPartNumber string
		description        string
	)

	cmd := &cobra.Command{
		Use:   "create OEM_PART_NUMBER PIECE_PRICE",
		Short: "Add a purchased component to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := quotient.MoneyFromString(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			component := &quotient.PurchasedComponent{
				OEMPartNumber: args[0],
				PiecePrice:    price,
			}

			if internalPartNumber != "" {
				component.InternalPartNumber = quotient.Set(internalPartNumber)
			}

			if description != "" {
				component.Description = quotient.Set(description)
			}

			err = client.PurchasedComponents().Create(cmd.Context(), component)
			if err != nil {
				return err
			}

			return renderComponentsTable([]quotient.PurchasedComponent{*component})
		},
	}

	cmd.Flags().StringVar(&internalPartNumber, "internal-part-number", "", "internal part number")
	cmd.Flags().StringVar(&description, "description", "", "component description")

	return cmd
}

func newComponentsBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Upsert purchased components from a JSON array file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}

			var components []quotient.PurchasedComponent
			if err := json.Unmarshal(data, &components); err != nil {
				return fmt.Errorf("failed to parse batch file: %w", err)
			}

			client, err := CreateLongRunningClient()
			if err != nil {
				return err
			}

			batch, err := client.PurchasedComponents().BatchUpsert(cmd.Context(), components)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(batch); handled {
				return err
			}

			fmt.Printf("Upserted %d components, %d failed\n", len(batch.Successes), len(batch.Failures))

			for _, failure := range batch.Failures {
				fmt.Printf("  %s: %s\n", failure.Resource.OEMPartNumber, failure.Error)
			}

			return nil
		},
	}
}

func newComponentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a purchased component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.PurchasedComponents().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted purchased component %d\n", id)

			return nil
		},
	}
}

func newComponentsColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List catalog custom columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			columns, err := client.PurchasedComponentColumns().List(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(columns); handled {
				return err
			}

			if len(columns) == 0 {
				fmt.Println("No columns found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Code Name", "Value Type")

			for _, col := range columns {
				_ = table.Append(col.Name, col.CodeName, col.ValueType)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
