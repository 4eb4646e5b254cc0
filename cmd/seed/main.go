// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/hackathon-registry/cliparse"
	"github.com/danielhkuo/hackathon-registry/db"
	"github.com/danielhkuo/hackathon-registry/seed"
	"github.com/danielhkuo/hackathon-registry/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		hackersFile  string
		hardwareFile string
		eventsFile   string
		envFile      string
		cfg          cliparse.Config
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import hackers, hardware and events into the registry database",
		Long: `Seed loads the registration exports into the registry database.

The schema is created if needed and the whole import runs in one
transaction. The database is chosen the same way the server chooses it:
flags first, then DATABASE_TYPE and DATABASE_URL (a .env file is loaded if
present), then the local SQLite default.

Examples:
  seed --hackers hackers.json --hardware hardware.json
  seed --events events.json -t postgres -d postgres://localhost/registry
  seed --hackers hackers.json --dry-run`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hackersFile == "" && hardwareFile == "" && eventsFile == "" {
				return fmt.Errorf("nothing to import: pass --hackers, --hardware or --events")
			}

			var bundle seed.Bundle
			if err := seed.LoadFile(hackersFile, &bundle.Hackers); err != nil {
				return err
			}
			if err := seed.LoadFile(hardwareFile, &bundle.Hardware); err != nil {
				return err
			}
			if err := seed.LoadFile(eventsFile, &bundle.Events); err != nil {
				return err
			}

			if dryRun {
				if err := bundle.Validate(); err != nil {
					return err
				}
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "Dry run: input is valid, nothing written")
				printSummary(cmd, seed.Summary{
					Persons:  len(bundle.Hackers),
					Ratings:  countRatings(bundle.Hackers),
					Hardware: len(bundle.Hardware),
					Events:   len(bundle.Events),
				})
				return nil
			}

			if err := cliparse.LoadEnvFile(envFile); err != nil {
				return err
			}
			if err := cliparse.ResolveDatabase(&cfg); err != nil {
				return err
			}

			conn, err := db.Open(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.CreateSchema(conn); err != nil {
				return err
			}

			sum, err := seed.Import(context.Background(), store.New(conn), bundle)
			if err != nil {
				color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), "✗ Import failed, nothing written")
				return err
			}

			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Import complete")
			printSummary(cmd, sum)
			return nil
		},
	}

	cmd.Flags().StringVar(&hackersFile, "hackers", "", "JSON file of hacker registrations")
	cmd.Flags().StringVar(&hardwareFile, "hardware", "", "JSON file of hardware inventory")
	cmd.Flags().StringVar(&eventsFile, "events", "", "JSON file of events")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")
	cmd.Flags().StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL (default DATABASE_URL or file:hackers.db)")
	cmd.Flags().StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type, sqlite or postgres (default DATABASE_TYPE or sqlite)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate input without writing")

	return cmd
}

func countRatings(hackers []seed.Hacker) int {
	n := 0
	for _, h := range hackers {
		n += len(h.Skills)
	}
	return n
}

func printSummary(cmd *cobra.Command, sum seed.Summary) {
	label := color.New(color.FgCyan).SprintFunc()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s %s\n", label("persons: "), humanize.Comma(int64(sum.Persons)))
	fmt.Fprintf(out, "  %s %s\n", label("ratings: "), humanize.Comma(int64(sum.Ratings)))
	fmt.Fprintf(out, "  %s %s\n", label("hardware:"), humanize.Comma(int64(sum.Hardware)))
	fmt.Fprintf(out, "  %s %s\n", label("events:  "), humanize.Comma(int64(sum.Events)))
}
