package cli

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jholiday"
	"github.com/rabitt1ove/jholiday/internal/cao"
	"github.com/rabitt1ove/jholiday/internal/log"
	"github.com/rabitt1ove/jholiday/internal/render"
)

func (a *app) checkCmd() *cobra.Command {
	var from, to, retries int
	c := &cobra.Command{
		Use:   "check",
		Short: "Compare the computed calendar with the Cabinet Office list",
		Long: `check downloads the official holiday CSV of the Cabinet Office (内閣府)
and prints every date that only one side considers a holiday. The year range
defaults to the years covered by the official list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			httpClient := &http.Client{Timeout: a.cfg.Timeout, Transport: a.transport}
			opts := []cao.Option{cao.WithMaxRetries(retries)}
			if a.cfg.CSVURL != "" {
				opts = append(opts, cao.WithCSVURL(a.cfg.CSVURL))
			}

			official, err := cao.NewClient(httpClient, opts...).Holidays(cmd.Context())
			if err != nil {
				return err
			}

			first, last, _ := cao.Span(official)
			if cmd.Flags().Changed("from") {
				first = from
			}
			if cmd.Flags().Changed("to") {
				last = to
			}

			diffs, err := cao.Compare(official, a.cal, first, last, a.cfg.Workers)
			if err != nil {
				return errors.Wrap(err, "compare")
			}
			log.Info("%d-%d: %d differences", first, last, len(diffs))

			rows := make(render.DiffRows, 0, len(diffs))
			for _, d := range diffs {
				rows = append(rows, render.DiffRow{
					Date:     d.Date.Format(jpholiday.DateLayout),
					Official: d.Official,
					Computed: d.Computed,
				})
			}
			return a.render(cmd, rows)
		},
	}
	c.Flags().IntVar(&from, "from", 0, "first year to compare")
	c.Flags().IntVar(&to, "to", 0, "last year to compare")
	c.Flags().IntVar(&retries, "retries", 3, "attempts per URL")
	return c
}
