// Package backofficectl implements the back-office maintenance CLI.
package backofficectl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/platform/authtoken"
	entrypoint "github.com/tppb-bridge/backoffice/internal/platform/cmd"
	"github.com/tppb-bridge/backoffice/internal/platform/csvexport"
	"github.com/tppb-bridge/backoffice/internal/platform/logging"
	"github.com/tppb-bridge/backoffice/internal/seed"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/app"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/service"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage/sqlite"
)

// Config holds environment settings shared by every subcommand.
type Config struct {
	DBPath        string `env:"DB_PATH" envDefault:"data/backoffice.db"`
	SessionSecret string `env:"SESSION_SECRET"`
	SessionIssuer string `env:"SESSION_ISSUER" envDefault:"tppb-backoffice"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"warn"`
}

type cli struct {
	cfg    Config
	out    io.Writer
	logger *zap.Logger
	now    func() time.Time
}

// NewRootCommand builds the command tree writing human output to out.
func NewRootCommand(cfg Config, out io.Writer) *cobra.Command {
	c := &cli{cfg: cfg, out: out, now: time.Now}
	root := &cobra.Command{
		Use:           "backofficectl",
		Short:         "Maintain the TPPB back-office database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(c.cfg.LogLevel)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	root.AddCommand(c.migrateCommand(), c.seedCommand(), c.tokenCommand(), c.exportCommand())
	return root
}

// Execute parses the environment and runs the command tree with args.
func Execute(ctx context.Context, args []string, out io.Writer) error {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return err
	}
	root := NewRootCommand(cfg, out)
	root.SetArgs(args)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBackofficeCtl, entrypoint.RunOptions{Logger: logging.Nop()}, root.ExecuteContext)
}

func (c *cli) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.OpenStore(cmd.Context(), c.cfg.DBPath)
			if err != nil {
				return err
			}
			defer closeStore(c.logger, store)
			fmt.Fprintf(c.out, "database %s is up to date\n", c.cfg.DBPath)
			return nil
		},
	}
}

func (c *cli) seedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load master data from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(file) == "" {
				return errors.New("--file is required")
			}
			fh, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer fh.Close()
			fixture, err := seed.Decode(fh)
			if err != nil {
				return err
			}
			return c.withService(cmd.Context(), func(svc *service.Service) error {
				res, err := seed.Apply(cmd.Context(), svc, fixture)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "seeded %d records, skipped %d existing\n", res.Created, res.Skipped)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "seed YAML file")
	return cmd
}

func (c *cli) tokenCommand() *cobra.Command {
	var (
		operator string
		role     string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a session token for an operator",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			token, err := authtoken.Issue(authtoken.Config{
				Secret: []byte(c.cfg.SessionSecret),
				Issuer: c.cfg.SessionIssuer,
				Now:    c.now,
			}, operator, role, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(c.out, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&operator, "operator", "", "operator name recorded in the activity log")
	cmd.Flags().StringVar(&role, "role", authtoken.DefaultRole, "operator role")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	return cmd
}

func (c *cli) exportCommand() *cobra.Command {
	var (
		outPath string
		filter  string
		search  string
	)
	cmd := &cobra.Command{
		Use:       "export DATASET",
		Short:     "Write a dataset as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: service.ExportDatasets(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd.Context(), func(svc *service.Service) error {
				table, err := svc.Export(cmd.Context(), args[0], storage.ListQuery{Filter: filter, Search: search})
				if err != nil {
					return err
				}
				if outPath == "" {
					outPath = csvexport.Filename(table.Name, c.now())
				}
				if outPath == "-" {
					return table.WriteCSV(c.out)
				}
				fh, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := table.WriteCSV(fh); err != nil {
					_ = fh.Close()
					_ = os.Remove(outPath)
					return err
				}
				if err := fh.Close(); err != nil {
					return fmt.Errorf("close export file: %w", err)
				}
				fmt.Fprintf(c.out, "wrote %d rows to %s\n", len(table.Rows), outPath)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output file (\"-\" for stdout, default <dataset>_<date>.csv)")
	cmd.Flags().StringVar(&filter, "filter", "", "AIP-160 filter expression")
	cmd.Flags().StringVar(&search, "q", "", "free-text search")
	return cmd
}

func (c *cli) withService(ctx context.Context, fn func(*service.Service) error) error {
	store, err := app.OpenStore(ctx, c.cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeStore(c.logger, store)
	svc, err := service.New(store, service.Options{Logger: c.logger, Now: c.now})
	if err != nil {
		return err
	}
	return fn(svc)
}

func closeStore(logger *zap.Logger, store *sqlite.Store) {
	if err := store.Close(); err != nil {
		logging.OrNop(logger).Warn("close store", zap.Error(err))
	}
}
