package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
)

// NewOrdersCommand creates the orders command group
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "Fetch orders, list newly placed ones, and set ERP codes",
	}

	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersNewCommand())
	cmd.AddCommand(newOrdersSetERPCommand())

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NUMBER",
		Short: "Fetch an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(cmd.Context(), number)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(order); handled {
				return err
			}

			customer := NotAvailable
			if order.Customer != nil {
				customer = order.Customer.FirstName + " " + order.Customer.LastName
			}

			total := NotAvailable
			if order.PaymentDetails != nil && order.PaymentDetails.TotalPrice != nil {
				total = order.PaymentDetails.TotalPrice.String()
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Number", strconv.Itoa(order.Number))
			_ = table.Append("Status", order.Status)
			_ = table.Append("Customer", customer)
			_ = table.Append("Quote", strconv.Itoa(order.QuoteNumber))
			_ = table.Append("Items", strconv.Itoa(len(order.OrderItems)))
			_ = table.Append("Ships On", order.ShipsOn)
			_ = table.Append("Total", total)
			_ = table.Append("ERP Code", optOrNA(order.ERPCode))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newOrdersNewCommand() *cobra.Command {
	var lastOrder int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "List newly placed orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var lastPtr *int
			if cmd.Flags().Changed("last") {
				lastPtr = &lastOrder
			}

			stubs, err := client.Orders().ListNew(cmd.Context(), lastPtr)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(stubs); handled {
				return err
			}

			if len(stubs) == 0 {
				fmt.Println("No new orders found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Number")

			for _, stub := range stubs {
				_ = table.Append(strconv.Itoa(stub.Number))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&lastOrder, "last", 0, "only orders after this number")

	return cmd
}

func newOrdersSetERPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-erp NUMBER CODE",
		Short: "Set an order's ERP code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(cmd.Context(), number)
			if err != nil {
				return err
			}

			order.ERPCode = quotient.Set(args[1])

			err = client.Orders().Update(cmd.Context(), order)
			if err != nil {
				return err
			}

			fmt.Printf("Order %d ERP code set to %s\n", order.Number, optOrNA(order.ERPCode))

			return nil
		},
	}
}
