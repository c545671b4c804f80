package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/repositories"
	"github.com/aliyacapital/seriesdash/internal/services"
)

type askCmd struct {
	summarize bool
	showSQL   bool
	direct    bool
}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask the assistant a question about the series data" }
func (*askCmd) Usage() string {
	return `dashctl ask [-summary] [-sql] <question...>

  Turns the question into a SELECT, runs it read-only and prints the result
  as a table.
`
}

func (c *askCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summarize, "summary", false, "Add a short summary of the result")
	f.BoolVar(&c.showSQL, "sql", false, "Print the generated SQL")
	f.BoolVar(&c.direct, "direct", false, "Run the query directly instead of through run_sql")
}

func (c *askCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.TrimSpace(strings.Join(f.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "Error: a question is required")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	completer, err := services.NewCompleter(a.cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var executor repositories.QueryExecutor
	if c.direct || a.cfg.Assistant.Executor == "direct" {
		executor = repositories.NewDirectQueryExecutor(a.db)
	} else {
		executor = repositories.NewRPCQueryExecutor(a.db)
	}
	svc := services.NewAssistantService(completer, executor, nil, a.cfg.Assistant.SummaryRows, a.log)

	answer, err := svc.Ask(ctx, "", &models.AssistantRequest{Question: question, Summarize: c.summarize})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answerMarkdown(answer, c.showSQL))
	return subcommands.ExitSuccess
}

// answerMarkdown renders an answer as a markdown table, with the SQL and
// summary when present.
func answerMarkdown(a *models.AssistantAnswer, withSQL bool) string {
	var b strings.Builder
	if withSQL && a.SQL != "" {
		fmt.Fprintf(&b, "```sql\n%s\n```\n\n", a.SQL)
	}
	if a.NoRows {
		b.WriteString(a.Message + "\n")
	} else {
		b.WriteString(markdownTable(a.Headers, a.Rows))
	}
	if a.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", a.Summary)
	}
	return b.String()
}

func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(escapeCells(headers), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, r := range rows {
		b.WriteString("| " + strings.Join(escapeCells(r), " | ") + " |\n")
	}
	return b.String()
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(strings.ReplaceAll(c, "|", `\|`), "\n", " ")
	}
	return out
}
