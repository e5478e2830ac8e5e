package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"creative-sync/internal/app"
	"creative-sync/internal/config"
	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
	"creative-sync/internal/db"
)

type rootOptions struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "syncctl",
		Short:         "Operate the creative sync engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			opts.logger = slog.New(cfg.Log.Handler(cmd.ErrOrStderr()))
			return nil
		},
	}

	root.AddCommand(
		newMigrateCommand(opts),
		newSeedCommand(opts),
		newSyncCommand(opts),
		newStatusCommand(opts),
	)
	return root
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := db.Migrate(opts.cfg.Psql.Addr.String()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo catalog into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := db.NewPostgresPool(cmd.Context(), opts.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err = db.Seed(cmd.Context(), pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "demo data seeded")
			return nil
		},
	}
}

func newSyncCommand(opts *rootOptions) *cobra.Command {
	var (
		auto       bool
		campaignID string
		tacticID   string
		daysBack   int
	)
	cmd := &cobra.Command{
		Use:   "sync <creative-id> [partner-id...]",
		Short: "Sync a creative to partners",
		Long: `Sync a creative to the given partners. With --auto the partners are
resolved from recent tactic activity and capabilities instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !auto && len(args) < 2 {
				return fmt.Errorf("partner ids are required unless --auto is set")
			}
			return withEngine(cmd.Context(), opts, func(a *app.App) error {
				var (
					res *domain.SyncResult
					err error
				)
				if auto {
					res, err = a.Service.AutoSync(cmd.Context(), args[0], autoOptions(daysBack, args[1:]))
				} else {
					sc := domain.SyncContext{TriggeredBy: domain.TriggerManual}
					if campaignID != "" {
						sc.CampaignID = &campaignID
					}
					if tacticID != "" {
						sc.TacticID = &tacticID
					}
					res, err = a.Service.SyncToAgents(cmd.Context(), args[0], args[1:], sc)
				}
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			})
		},
	}
	cmd.Flags().BoolVar(&auto, "auto", false, "resolve relevant partners; extra partner ids are force-included")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign context recorded on the status rows")
	cmd.Flags().StringVar(&tacticID, "tactic", "", "tactic context recorded on the status rows")
	cmd.Flags().IntVar(&daysBack, "days-back", 0, "activity window in days for --auto (default 30)")
	return cmd
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <creative-id>",
		Short: "Show per-partner sync status of a creative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), opts, func(a *app.App) error {
				rows, err := a.Service.GetStatus(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printStatus(cmd, rows)
				return nil
			})
		},
	}
}

func withEngine(ctx context.Context, opts *rootOptions, fn func(*app.App) error) error {
	a, err := app.New(ctx, opts.cfg, opts.logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func autoOptions(daysBack int, force []string) port.RelevanceOptions {
	opts := port.RelevanceOptions{DaysBack: daysBack}
	if len(force) > 0 {
		opts.ForceIncludeAgents = force
	}
	return opts
}

func printStatus(cmd *cobra.Command, rows []domain.SyncStatusRecord) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARTNER\tNAME\tSYNC\tAPPROVAL\tERROR")
	for _, r := range rows {
		approval, syncErr := "-", "-"
		if r.ApprovalStatus != nil {
			approval = string(*r.ApprovalStatus)
		}
		if r.SyncError != nil {
			syncErr = *r.SyncError
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.SalesAgentID, r.SalesAgentName, r.SyncStatus, approval, syncErr)
	}
	_ = w.Flush()
}
