package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shoebox/internal/digestindex"
	"shoebox/internal/importer"
	"shoebox/internal/watch"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var workersFlag int
	var watchFlag bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import intake files into the archive",
		Long: `Import walks the intake tree, moves unique media files into the
archive organized by type, camera model, and capture date, and deletes
files whose content is already archived. With --watch it keeps running
and re-imports whenever new files settle in the intake tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if workersFlag > 0 {
				cfg.Import.Workers = workersFlag
			}

			logger := ctx.newLogger(cfg)
			store, err := digestindex.Open(cfg)
			if err != nil {
				return fmt.Errorf("open digest index: %w", err)
			}
			defer func() { _ = store.Close() }()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			imp := importer.New(cfg, store, logger)
			out := cmd.OutOrStdout()

			runOnce := func(runCtx context.Context) error {
				summary, err := imp.Run(runCtx)
				if err != nil {
					return err
				}
				renderSummary(out, summary)
				return nil
			}

			if err := runOnce(runCtx); err != nil {
				return err
			}
			if !watchFlag {
				return nil
			}

			fmt.Fprintf(out, "Watching %s for new files (Ctrl-C to stop)\n", cfg.Paths.IntakeDir)
			watcher := watch.New(cfg.Paths.IntakeDir, logger, watch.DefaultDebounce)
			return watcher.Run(runCtx, runOnce)
		},
	}

	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of concurrent workers (defaults to the configured value)")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "Keep running and import as new files arrive")
	return cmd
}
