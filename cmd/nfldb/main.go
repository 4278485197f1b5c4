// Command nfldb loads the teams and players CSV files into a relational
// database and prints a set of sample queries against them.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"gridiron/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration shared by every subcommand
type app struct {
	cfg *config.BatchConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var driver, dsn string

	root := &cobra.Command{
		Use:          "nfldb",
		Short:        "Load and query the NFL teams and players database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadBatch()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("driver") {
				cfg.Driver = driver
			}
			if cmd.Flags().Changed("dsn") {
				cfg.DSN = dsn
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			setupLogger(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&driver, "driver", config.DriverSQLite, "database driver (sqlite or postgres)")
	root.PersistentFlags().StringVar(&dsn, "dsn", "nfl_database.db", "database file (sqlite) or connection string (postgres)")

	root.AddCommand(newCreateCmd(a))
	root.AddCommand(newQueryCmd(a))
	return root
}

func setupLogger(levelName string) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
