package cli

import (
	"encoding/json"
	"fmt"
	"jamat/internal/domains/visit/model/dto"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func (r *root) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect visit events",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tail",
		Short: "Print visit.registered events until interrupted",
		Args:  cobra.NoArgs,
		RunE:  r.runEventsTail,
	})

	return cmd
}

func (r *root) runEventsTail(cmd *cobra.Command, _ []string) error {
	app := r.application()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	topic := app.Config.Events.Topic

	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "Tailing %s on %s\n", topic, app.Broker.Name()); err != nil {
		return err //nolint:wrapcheck
	}

	return app.Broker.Subscribe(ctx, topic, func(key string, body []byte) error { //nolint:wrapcheck
		if r.isJSON() {
			_, err := fmt.Fprintln(out, string(body))

			return err //nolint:wrapcheck
		}

		var event dto.RegisteredEvent
		if err := json.Unmarshal(body, &event); err != nil {
			_, err = fmt.Fprintf(out, "%s\tundecodable event: %v\n", key, err)

			return err //nolint:wrapcheck
		}

		_, err := fmt.Fprintf(out, "host %d\t%s %d\t%s..%s\tvisits %v\toverlap=%t\tby %s\n",
			event.HostMosqueID, event.Visitor.Kind, event.Visitor.ID, event.StartDate, event.EndDate,
			event.VisitIDs, event.Overlap, event.RegisteredBy)

		return err //nolint:wrapcheck
	})
}
