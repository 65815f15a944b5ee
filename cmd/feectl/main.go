// feectl prices single orders against the tiered commission schedules
// from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/quantfold/feemodel/config"
	"github.com/quantfold/feemodel/currency"
	"github.com/quantfold/feemodel/exchanges/asset"
	"github.com/quantfold/feemodel/exchanges/fee"
	"github.com/quantfold/feemodel/exchanges/order"
	"github.com/quantfold/feemodel/exchanges/security"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "path to a YAML settings file",
}

func main() {
	app := &cli.App{
		Name:  "feectl",
		Usage: "price orders against the tiered commission schedules",
		Commands: []*cli.Command{
			calculateCommand,
			scheduleCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// loadSettings reads the optional settings file, applies its logging
// verbosity and returns the calculator seed.
func loadSettings(ctx *cli.Context) (fee.Settings, error) {
	path := ctx.String("config")
	if path == "" {
		return fee.Settings{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fee.Settings{}, err
	}
	level, err := cfg.Level()
	if err != nil {
		return fee.Settings{}, err
	}
	logrus.SetLevel(level)
	return cfg.CalculatorSettings()
}

var calculateCommand = &cli.Command{
	Name:  "calculate",
	Usage: "derive the transaction cost for a single order",
	Flags: []cli.Flag{
		configFlag,
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "asset class, one of: " + asset.Supported().JoinToString(", "),
			Required: true,
		},
		&cli.StringFlag{Name: "symbol", Usage: "instrument symbol"},
		&cli.StringFlag{Name: "market", Value: security.MarketUSA, Usage: "listing market identifier"},
		&cli.StringFlag{Name: "primary-exchange", Usage: "primary listing exchange for USA equities"},
		&cli.StringFlag{Name: "quote", Value: currency.USD.String(), Usage: "quote currency"},
		&cli.StringFlag{Name: "side", Value: order.Buy.String(), Usage: "order side"},
		&cli.StringFlag{Name: "type", Value: order.Market.String(), Usage: "order type"},
		&cli.Float64Flag{Name: "amount", Usage: "order quantity in shares, contracts or base currency", Required: true},
		&cli.Float64Flag{Name: "price", Usage: "limit or trigger price"},
		&cli.Float64Flag{Name: "bid", Usage: "current best bid"},
		&cli.Float64Flag{Name: "ask", Usage: "current best ask"},
		&cli.StringFlag{Name: "underlying", Usage: "underlying future symbol for future options"},
	},
	Action: calculate,
}

func calculate(ctx *cli.Context) error {
	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	class, err := asset.New(ctx.String("asset"))
	if err != nil {
		return err
	}
	side, err := order.StringToOrderSide(ctx.String("side"))
	if err != nil {
		return err
	}
	oType, err := order.StringToOrderType(ctx.String("type"))
	if err != nil {
		return err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	ord := &order.Detail{
		ID:               id,
		Amount:           decimal.NewFromFloat(ctx.Float64("amount")),
		Price:            decimal.NewFromFloat(ctx.Float64("price")),
		TriggerPrice:     decimal.NewFromFloat(ctx.Float64("price")),
		Side:             side,
		Type:             oType,
		Status:           order.New,
		Date:             time.Now(),
		UnderlyingSymbol: ctx.String("underlying"),
	}
	sec := &security.Security{
		Symbol:          ctx.String("symbol"),
		Asset:           class,
		Market:          ctx.String("market"),
		QuoteCurrency:   currency.NewCode(ctx.String("quote")),
		Bid:             decimal.NewFromFloat(ctx.Float64("bid")),
		Ask:             decimal.NewFromFloat(ctx.Float64("ask")),
		PrimaryExchange: ctx.String("primary-exchange"),
	}

	charge, err := fee.NewCalculator(settings).GetOrderFee(ord, sec)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", charge.Amount, charge.Currency)
	return nil
}

var scheduleCommand = &cli.Command{
	Name:   "schedule",
	Usage:  "show the tier rates resolved from the configured monthly volumes",
	Flags:  []cli.Flag{configFlag},
	Action: schedule,
}

func schedule(ctx *cli.Context) error {
	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	rates := fee.NewCalculator(settings).Rates()
	w := ctx.App.Writer
	fmt.Fprintf(w, "equity:  %s per share\n", rates.EquityPerShare)
	fmt.Fprintf(w, "futures: tier %d\n", rates.FutureTier+1)
	fmt.Fprintf(w, "forex:   %s per dollar, minimum %s per order\n",
		rates.ForexPerDollar, rates.ForexMinimum)
	fmt.Fprintf(w, "options: %s\n", rates.Option)
	fmt.Fprintf(w, "crypto:  %s per dollar\n", rates.CryptoPerDollar)
	return nil
}
