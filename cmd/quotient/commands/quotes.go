package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
)

// NewQuotesCommand creates the quotes command group
func NewQuotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quotes",
		Aliases: []string{"quote"},
		Short:   "Manage quotes",
		Long:    "Fetch quotes, list newly sent ones, and change their status or ERP code",
	}

	cmd.AddCommand(newQuotesGetCommand())
	cmd.AddCommand(newQuotesNewCommand())
	cmd.AddCommand(newQuotesSetStatusCommand())
	cmd.AddCommand(newQuotesSetERPCommand())

	return cmd
}

func quoteCustomerName(quote *quotient.Quote) string {
	if quote.Customer == nil {
		return NotAvailable
	}

	return quote.Customer.FirstName + " " + quote.Customer.LastName
}

func newQuotesGetCommand() *cobra.Command {
	var revision int

	cmd := &cobra.Command{
		Use:   "get NUMBER",
		Short: "Fetch a quote",
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

			var revisionPtr *int
			if cmd.Flags().Changed("revision") {
				revisionPtr = &revision
			}

			quote, err := client.Quotes().Get(cmd.Context(), number, revisionPtr)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(quote); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Number", strconv.Itoa(quote.Number))
			_ = table.Append("Revision", intOrNA(quote.RevisionNumber))
			_ = table.Append("Status", string(quote.Status))
			_ = table.Append("Customer", quoteCustomerName(quote))
			_ = table.Append("Items", strconv.Itoa(len(quote.QuoteItems)))
			_ = table.Append("Sent", strOrNA(quote.SentDate))
			_ = table.Append("Expired", strconv.FormatBool(quote.Expired))
			_ = table.Append("ERP Code", optOrNA(quote.ERPCode))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&revision, "revision", 0, "quote revision number")

	return cmd
}

func newQuotesNewCommand() *cobra.Command {
	var lastQuote int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "List newly sent quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var lastPtr *int
			if cmd.Flags().Changed("last") {
				lastPtr = &lastQuote
			}

			stubs, err := client.Quotes().ListNew(cmd.Context(), lastPtr, nil)
			if err != nil {
				return err
			}

			if handled, err := OutputStructured(stubs); handled {
				return err
			}

			if len(stubs) == 0 {
				fmt.Println("No new quotes found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Number", "Revision")

			for _, stub := range stubs {
				_ = table.Append(strconv.Itoa(stub.Number), intOrNA(stub.Revision))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&lastQuote, "last", 0, "only quotes after this number")

	return cmd
}

func newQuotesSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status NUMBER STATUS",
		Short: "Change a quote's status",
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

			quote, err := client.Quotes().Get(cmd.Context(), number, nil)
			if err != nil {
				return err
			}

			err = client.Quotes().SetStatus(cmd.Context(), quote, quotient.QuoteStatus(args[1]))
			if err != nil {
				return err
			}

			fmt.Printf("Quote %d is now %s\n", quote.Number, quote.Status)

			return nil
		},
	}
}

func newQuotesSetERPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-erp NUMBER CODE",
		Short: "Set a quote's ERP code",
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

			quote, err := client.Quotes().Get(cmd.Context(), number, nil)
			if err != nil {
				return err
			}

			quote.ERPCode = quotient.Set(args[1])

			err = client.Quotes().Update(cmd.Context(), quote)
			if err != nil {
				return err
			}

			fmt.Printf("Quote %d ERP code set to %s\n", quote.Number, optOrNA(quote.ERPCode))

			return nil
		},
	}
}
