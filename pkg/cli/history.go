package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
	"github.com/m-mizutani/syscmd/pkg/repository/sqlite"
	"github.com/urfave/cli/v3"
)

const previewWidth = 60

func newHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recorded actions from the SQLite store",
		Flags: []cli.Flag{
			dbFlag(model.DefaultServerConfig().DBPath),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Number of records to show (0 shows all)",
				Value:   20,
			},
		},
		Action: runHistory,
	}
}

func runHistory(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("db")
	if _, err := os.Stat(path); err != nil {
		return goerr.Wrap(err, "database not found", goerr.V("db", path))
	}

	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(ctx, int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	printRecords(cmd.Root().Writer, records)
	return nil
}

func printRecords(w io.Writer, records []*model.CommandRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records yet")
		return
	}

	idColor := color.New(color.FgCyan)
	for _, r := range records {
		nameColor := color.New(color.FgGreen)
		if strings.HasPrefix(r.Output, "Ошибка") {
			nameColor = color.New(color.FgRed)
		}

		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			idColor.Sprintf("#%-4d", r.ID),
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			nameColor.Sprintf("%-10s", r.Name),
			preview(r.Output),
		)
	}
}

// preview returns the first line of output, cut to previewWidth runes
func preview(output string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	runes := []rune(line)
	if len(runes) > previewWidth {
		return string(runes[:previewWidth-1]) + "…"
	}
	return line
}
