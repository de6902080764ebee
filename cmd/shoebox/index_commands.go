package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shoebox/internal/digestindex"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Digest index utilities",
	}

	indexCmd.AddCommand(newIndexStatsCommand(ctx))
	return indexCmd
}

func newIndexStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show digest index health and record count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := digestindex.Open(cfg)
			if err != nil {
				return fmt.Errorf("open digest index: %w", err)
			}
			defer func() { _ = store.Close() }()

			stats, err := store.CheckHealth(cmd.Context())
			if err != nil {
				return fmt.Errorf("check index health: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			integrity := statusOK
			if !stats.Integrity {
				integrity = statusError
			}
			fmt.Fprintln(out, renderStatusLine("Database", statusInfo, stats.DBPath, colorize))
			fmt.Fprintln(out, renderStatusLine("Records", statusInfo, strconv.FormatInt(stats.Records, 10), colorize))
			fmt.Fprintln(out, renderStatusLine("Integrity", integrity, yesNo(stats.Integrity), colorize))
			if !stats.Integrity {
				return fmt.Errorf("index integrity check failed for %s", stats.DBPath)
			}
			return nil
		},
	}
}
