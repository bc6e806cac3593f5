// Package cli defines the cobra command tree for jamatctl.
package cli

import (
	"context"
	"jamat/shared/constant"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Loader builds the application graph. Commands call it lazily so --help works without a database.
type Loader func() *App

type root struct {
	load   Loader
	format string
	app    *App
}

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd(load Loader) *cobra.Command {
	r := &root{load: load}

	cmd := &cobra.Command{
		Use:           "jamatctl",
		Short:         "Administer the jamat visit tracker",
		Long:          "Seed reference data, register visits, print dashboards and tail visit events.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if r.app != nil {
				r.app.Close(cmd.Context())
			}
		},
	}

	cmd.PersistentFlags().StringVar(&r.format, "format", formatText, "output format (text|json)")

	cmd.AddCommand(
		r.newMigrateCmd(),
		r.newSeedCmd(),
		r.newVisitCmd(),
		r.newDashboardCmd(),
		r.newEventsCmd(),
		r.newHashPasswordCmd(),
	)

	return cmd
}

func (r *root) application() *App {
	if r.app == nil {
		r.app = r.load()
	}

	return r.app
}

func (r *root) isJSON() bool {
	return r.format == formatJSON
}

// actorContext tags writes made from the command line.
func actorContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, constant.ContextKeyUserID, "jamatctl")
}
