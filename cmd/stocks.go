package cmd

import (
	"errors"
	"fmt"
	"strings"

	"bettero/internal/api"
	"bettero/internal/cli"
	"bettero/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagStockSymbol      string
	flagStockShares      int64
	flagStockName        string
	flagStockCorporation string
)

var stocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "List stock holdings and their market value",
	RunE:  runStocksList,
}

var stocksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a stock position",
	RunE:  runStocksAdd,
}

var stocksUpdateCmd = &cobra.Command{
	Use:   "update <symbol>",
	Short: "Update a stock position",
	Long: "Update the position for a symbol. The symbol addresses the " +
		"position and cannot change; only the given flags do.",
	Args: cobra.ExactArgs(1),
	RunE: runStocksUpdate,
}

var stocksRmCmd = &cobra.Command{
	Use:   "rm <symbol>",
	Short: "Delete a stock position",
	Args:  cobra.ExactArgs(1),
	RunE:  runStocksRm,
}

var stocksPriceCmd = &cobra.Command{
	Use:   "price <symbol>",
	Short: "Show the recent price history for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runStocksPrice,
}

func init() {
	stocksAddCmd.Flags().StringVar(&flagStockSymbol, "symbol", "", "Ticker symbol")
	stocksAddCmd.Flags().Int64Var(&flagStockShares, "shares", 0, "Number of shares held")
	stocksAddCmd.Flags().StringVar(&flagStockName, "name", "", "Display name")
	stocksAddCmd.Flags().StringVar(&flagStockCorporation, "corporation", "", "Issuing corporation")

	stocksUpdateCmd.Flags().Int64Var(&flagStockShares, "shares", 0, "Number of shares held")
	stocksUpdateCmd.Flags().StringVar(&flagStockName, "name", "", "Display name")
	stocksUpdateCmd.Flags().StringVar(&flagStockCorporation, "corporation", "", "Issuing corporation")

	stocksCmd.AddCommand(stocksAddCmd)
	stocksCmd.AddCommand(stocksUpdateCmd)
	stocksCmd.AddCommand(stocksRmCmd)
	stocksCmd.AddCommand(stocksPriceCmd)
	rootCmd.AddCommand(stocksCmd)
}

func runStocksList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	stocks, err := env.client.Stocks(ctx)
	if err != nil {
		return err
	}
	if len(stocks) == 0 {
		fmt.Println("\n  No stock positions.")
		return nil
	}

	var total float64
	rows := make([][]string, 0, len(stocks))
	for _, s := range stocks {
		total += s.MarketValue()
		change := cli.FormatSigned(s.Change, s.Change >= 0)
		style := cli.GainStyle
		if s.Change < 0 {
			style = cli.LossStyle
			change = cli.FormatMoney(s.Change)
		}
		rows = append(rows, []string{
			s.Symbol,
			cli.Truncate(s.Name, 24),
			cli.FormatShares(s.Shares),
			cli.FormatMoney(s.CurrentClose),
			style.Render(change),
			cli.FormatMoney(s.MarketValue()),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Portfolio value " + cli.FormatMoney(total),
		Headers: []string{"Symbol", "Name", "Shares", "Close", "Change", "Value"},
		Rows:    rows,
	}))
	return nil
}

func runStocksAdd(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	stock := model.Stock{
		Symbol:      flagStockSymbol,
		Shares:      flagStockShares,
		Name:        flagStockName,
		Corporation: flagStockCorporation,
	}
	saved, err := env.client.CreateStock(ctx, stock)
	if err != nil {
		return err
	}
	fmt.Printf("  %s (%s) added.\n", saved.Symbol, saved.Name)
	return nil
}

func runStocksUpdate(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	stocks, err := env.client.Stocks(ctx)
	if err != nil {
		return err
	}
	symbol := args[0]
	var stock model.Stock
	found := false
	for _, s := range stocks {
		if strings.EqualFold(s.Symbol, symbol) {
			stock = s
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no position for %s", symbol)
	}

	flags := cmd.Flags()
	if flags.Changed("shares") {
		stock.Shares = flagStockShares
	}
	if flags.Changed("name") {
		stock.Name = flagStockName
	}
	if flags.Changed("corporation") {
		stock.Corporation = flagStockCorporation
	}

	saved, err := env.client.UpdateStock(ctx, stock)
	if err != nil {
		return err
	}
	fmt.Printf("  %s updated: %s shares.\n", saved.Symbol, cli.FormatShares(saved.Shares))
	return nil
}

func runStocksRm(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	if err := env.client.DeleteStock(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("  %s deleted.\n", args[0])
	return nil
}

func runStocksPrice(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	symbol := args[0]
	points, err := env.client.StockPrices(ctx, symbol)
	if errors.Is(err, api.ErrNotFound) {
		fmt.Printf("\n  No price history for %s.\n", symbol)
		return nil
	}
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Printf("\n  No price history for %s.\n", symbol)
		return nil
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Date, cli.FormatMoney(p.Close)})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   symbol,
		Headers: []string{"Date", "Close"},
		Rows:    rows,
	}))
	return nil
}
