package main

import (
	"fmt"
	"os"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/migrate"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			fsys := os.DirFS(dir)
			out := cmd.OutOrStdout()

			if dryRun {
				all, err := migrate.Load(fsys)
				if err != nil {
					return fmt.Errorf("failed to load migrations: %w", err)
				}
				pending, err := migrate.Pending(cmd.Context(), e.pool, all)
				if err != nil {
					return err
				}
				if len(pending) == 0 {
					fmt.Fprintln(out, "No pending migrations.")
					return nil
				}
				fmt.Fprintln(out, "Pending migrations:")
				for _, m := range pending {
					fmt.Fprintf(out, "- %s\n", m.Version)
				}
				return nil
			}

			applied, err := migrate.Up(cmd.Context(), e.pool, fsys)
			for _, v := range applied {
				fmt.Fprintf(out, "Applied migration: %s\n", v)
			}
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if len(applied) == 0 {
				fmt.Fprintln(out, "No pending migrations.")
			}
			return nil
		},
	}

	cmd.Flags().String("dir", "migrations", "Directory containing *.sql migrations")
	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")

	return cmd
}

func PingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.pool.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("database unreachable: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
