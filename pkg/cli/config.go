package cli

import (
	"github.com/m-mizutani/syscmd/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func serveFlags() []cli.Flag {
	defaults := model.DefaultServerConfig()

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Aliases: []string{"a"},
			Usage:   "Listen address",
			Value:   defaults.Addr,
			Sources: cli.EnvVars("SYSCMD_ADDR"),
		},
		&cli.StringFlag{
			Name:    "storage",
			Usage:   "Record store (sqlite, memory)",
			Value:   string(defaults.Storage),
			Sources: cli.EnvVars("SYSCMD_STORAGE"),
		},
		dbFlag(defaults.DBPath),
		&cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"e"},
			Usage:   "Encoding of command output (utf-8, auto, cp866, cp437, windows-1251, koi8-r)",
			Value:   defaults.Encoding,
			Sources: cli.EnvVars("SYSCMD_ENCODING"),
		},
		&cli.DurationFlag{
			Name:    "exec-timeout",
			Usage:   "Kill the network command after this duration (0 waits forever)",
			Value:   defaults.ExecTimeout,
			Sources: cli.EnvVars("SYSCMD_EXEC_TIMEOUT"),
		},
	}
}

func dbFlag(value string) cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "Path of the SQLite database",
		Value:   value,
		Sources: cli.EnvVars("SYSCMD_DB"),
	}
}

func configFromCommand(cmd *cli.Command) *model.ServerConfig {
	return &model.ServerConfig{
		Addr:        cmd.String("addr"),
		Storage:     model.StorageKind(cmd.String("storage")),
		DBPath:      cmd.String("db"),
		Encoding:    cmd.String("encoding"),
		ExecTimeout: cmd.Duration("exec-timeout"),
	}
}
