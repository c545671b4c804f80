package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aliyacapital/seriesdash/internal/export"
	"github.com/aliyacapital/seriesdash/internal/repositories"
	"github.com/aliyacapital/seriesdash/internal/services"
)

type exportCmd struct {
	filter   filterFlags
	out      string
	sort     string
	desc     bool
	investor string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the series summary or an investor breakdown to XLSX" }
func (*exportCmd) Usage() string {
	return `dashctl export -o <file.xlsx> [-sort net -desc] [-of <investor>]

  Writes the series summary table, or with -of the class breakdown of one
  investor, to an Excel workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filter.register(f)
	f.StringVar(&c.out, "o", "series-summary.xlsx", "Output file")
	f.StringVar(&c.sort, "sort", "", "Summary column to sort by")
	f.BoolVar(&c.desc, "desc", false, "Sort descending")
	f.StringVar(&c.investor, "of", "", "Export this investor's breakdown instead of the summary")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var table *export.Table
	if c.investor != "" {
		d, err := svc.InvestorDetail(ctx, filter, c.investor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		table = export.InvestorTable(d)
	} else {
		rows, err := svc.SeriesSummary(ctx, filter, c.sort, c.desc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		table = export.SeriesSummaryTable(rows)
	}

	file, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := export.WriteXLSX(file, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %d rows to %s\n", len(table.Rows), c.out)
	return subcommands.ExitSuccess
}
