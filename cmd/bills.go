package cmd

import (
	"fmt"
	"strconv"

	"bettero/internal/cli"
	"bettero/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBillsOverdue bool

	flagBillDescription string
	flagBillCategory    string
	flagBillAmount      float64
	flagBillDue         string
	flagBillAccount     string
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List pending bills",
	RunE:  runBillsList,
}

var billsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a pending bill",
	Long:  "Update a pending bill. Only the given flags change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsUpdate,
}

var billsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a bill",
	Long: "Delete a bill. If the bill was already paid, the transaction it " +
		"created stays on record.",
	Args: cobra.ExactArgs(1),
	RunE: runBillsRm,
}

func init() {
	billsCmd.Flags().BoolVar(&flagBillsOverdue, "overdue", false, "Show overdue reminders instead")

	billsUpdateCmd.Flags().StringVar(&flagBillDescription, "description", "", "What the bill is for")
	billsUpdateCmd.Flags().StringVar(&flagBillCategory, "category", "", "One of the known categories")
	billsUpdateCmd.Flags().Float64Var(&flagBillAmount, "amount", 0, "Positive amount")
	billsUpdateCmd.Flags().StringVar(&flagBillDue, "due", "", "Due date (YYYY-MM-DD)")
	billsUpdateCmd.Flags().StringVar(&flagBillAccount, "account", "", "Pay-from account name")

	billsCmd.AddCommand(billsUpdateCmd)
	billsCmd.AddCommand(billsRmCmd)
	rootCmd.AddCommand(billsCmd)
}

func runBillsList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	if flagBillsOverdue {
		messages, err := env.client.OverdueMessages(ctx)
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			fmt.Println("\n  Nothing overdue.")
			return nil
		}
		for _, m := range messages {
			fmt.Println("  " + cli.WarnStyle.Render(fmt.Sprintf(
				"%s (%s) was due %s", m.BillDescription, cli.FormatMoney(m.BillAmount), m.BillDueDate)))
		}
		return nil
	}

	bills, err := env.client.Bills(ctx)
	if err != nil {
		return err
	}
	if len(bills) == 0 {
		fmt.Println("\n  No pending bills.")
		return nil
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			b.DueDate,
			cli.Truncate(b.Description, 40),
			b.Category,
			b.PayAccountName,
			cli.FormatMoney(b.Amount),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Due", "Description", "Category", "Pay From", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runBillsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid bill id %q", args[0])
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	bills, err := env.client.Bills(ctx)
	if err != nil {
		return err
	}
	var bill model.Bill
	found := false
	for _, b := range bills {
		if b.ID == id {
			bill = b
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no pending bill with id %d", id)
	}

	flags := cmd.Flags()
	if flags.Changed("description") {
		bill.Description = flagBillDescription
	}
	if flags.Changed("category") {
		bill.Category = flagBillCategory
	}
	if flags.Changed("amount") {
		bill.Amount = flagBillAmount
	}
	if flags.Changed("due") {
		bill.DueDate = flagBillDue
	}
	if flags.Changed("account") {
		bill.PayAccountName = flagBillAccount
	}

	saved, err := env.client.UpdateBill(ctx, bill)
	if err != nil {
		return err
	}
	fmt.Printf("  Bill %d updated.\n", saved.ID)
	return nil
}

func runBillsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid bill id %q", args[0])
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	fmt.Println("  " + cli.WarnStyle.Render(
		"Note: if this bill was paid, deleting it does not remove the payment transaction."))
	if err := env.client.DeleteBill(ctx, id); err != nil {
		return err
	}
	fmt.Printf("  Bill %d deleted.\n", id)
	return nil
}
