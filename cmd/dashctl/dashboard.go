package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aliyacapital/seriesdash/internal/reports"
	"github.com/aliyacapital/seriesdash/internal/repositories"
	"github.com/aliyacapital/seriesdash/internal/services"
)

type dashboardCmd struct {
	filter       filterFlags
	excludeZeros bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "print the dashboard charts for a filter as JSON" }
func (*dashboardCmd) Usage() string {
	return `dashctl dashboard [-period lastMonth] [-spv <name>] [-investor <text>] ...

  Computes every dashboard chart from the filtered rows and prints them as
  indented JSON.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.filter.register(f)
	f.BoolVar(&c.excludeZeros, "exclude-zeros", false, "Drop rows that charge no fee before building the waterfall")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	svc := services.NewReportingService(repositories.NewSeriesRepository(a.db), nil, services.ReportingOptions{
		HouseNames: a.cfg.Reports.HouseInvestors,
	}, a.log)
	d, err := svc.Dashboard(ctx, filter, reports.WaterfallOptions{ExcludeZeros: c.excludeZeros})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
