package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "syscmd",
		Usage:   "HTTP API for host network info and file creation",
		Version: "0.1.0",
		Description: `syscmd serves two actions over HTTP and logs each of them as a record:

  POST /apps/systemcommands/ifconfig/   runs ifconfig (ipconfig on Windows) and stores its output
  POST /apps/systemcommands/touchfile/  creates an empty file

Use "syscmd history" to inspect the recorded actions.`,
		Flags: loggerFlags(),
		Commands: []*cli.Command{
			newServeCommand(),
			newHistoryCommand(),
		},
	}
}
