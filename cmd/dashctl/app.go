package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/config"
	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
)

var configPath = flag.String("config", os.Getenv("SERIESDASH_CONFIG"), "Path to the config file")

// app is what every subcommand needs: config, a quiet logger and the
// database.
type app struct {
	cfg config.Config
	log *zap.Logger
	db  *db.DB
}

func openApp() (*app, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	log := zap.NewNop()
	database, err := db.Connect(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, db: database}, nil
}

func (a *app) Close() {
	a.db.Close()
}

// filterFlags binds the dashboard filter to a flag set.
type filterFlags struct {
	period, fund, spv, class, investor, rm, solicitor, tableType string
}

func (f *filterFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.period, "period", "all", "Time period: all, lastMonth or lastYear")
	fs.StringVar(&f.fund, "fund", "", "Fund")
	fs.StringVar(&f.spv, "spv", "", "SPV")
	fs.StringVar(&f.class, "class", "", "Class")
	fs.StringVar(&f.investor, "investor", "", "Investor name substring")
	fs.StringVar(&f.rm, "rm", "", "Relationship manager")
	fs.StringVar(&f.solicitor, "solicitor", "", "Solicitor")
	fs.StringVar(&f.tableType, "table", string(models.RecordTypeSummary), "Row type: tblSeries or tblDetailSeries")
}

func (f *filterFlags) filter() (models.RowFilter, error) {
	w, err := models.ParseTimeWindow(f.period)
	if err != nil {
		return models.RowFilter{}, err
	}
	rf := models.RowFilter{
		TableType: models.RecordType(strings.TrimSpace(f.tableType)),
		Fund:      strings.TrimSpace(f.fund),
		SPV:       strings.TrimSpace(f.spv),
		Class:     strings.TrimSpace(f.class),
		RM:        strings.TrimSpace(f.rm),
		Solicitor: strings.TrimSpace(f.solicitor),
		Investor:  strings.TrimSpace(f.investor),
		Window:    w,
	}
	return rf, rf.Validate()
}

func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
