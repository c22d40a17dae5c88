// Package cli implements the jpholiday command tree.
package cli

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jholiday"
	"github.com/rabitt1ove/jholiday/internal/config"
	"github.com/rabitt1ove/jholiday/internal/log"
	"github.com/rabitt1ove/jholiday/internal/render"
)

// jst is the zone dates are reported in.
var jst = time.FixedZone("Asia/Tokyo", 9*60*60)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg *config.Config
	cal *jpholiday.Calendar

	// transport overrides the HTTP transport of the check command.
	transport http.RoundTripper

	// Global flags.
	configPath string
	envFile    string
	format     string
	header     bool
	lang       string
	logLevel   string
}

// Execute builds the command tree and executes commands.
func Execute() error {
	return newRootCmd(&app{}).Execute()
}

func newRootCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "jpholiday",
		Short: "Japanese national holidays computed from the Public Holiday Act",
		Long: `jpholiday computes Japanese national holidays (国民の祝日), substitute
holidays (振替休日) and national holidays (国民の休日) for any year, and
answers business day questions on top of them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	f := c.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.StringVar(&a.envFile, "env-file", ".env", "dotenv file with JPHOLIDAY_* variables")
	f.StringVarP(&a.format, "format", "o", "", "output format: text, json, yaml, csv or msgpack")
	f.BoolVar(&a.header, "header", false, "print the column header in text output (default: only on a terminal)")
	f.StringVar(&a.lang, "lang", "", "label language, e.g. ja or en")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	c.AddCommand(
		a.listCmd(),
		a.datesCmd(),
		a.daysCmd(),
		a.isCmd(),
		a.describeCmd(),
		a.nextCmd(),
		a.prevCmd(),
		a.equinoxCmd(),
		a.businessCmd(),
		a.checkCmd(),
	)
	return c
}

// setup loads the configuration and applies the global flags over it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		if err := cfg.SetFormat(a.format); err != nil {
			return err
		}
	}
	if flags.Changed("lang") {
		if err := cfg.SetLanguage(a.lang); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if err := cfg.SetLogLevel(a.logLevel); err != nil {
			return err
		}
	}

	log.SetLevel(cfg.LogLevel)
	a.cfg = cfg
	a.cal = jpholiday.New(jpholiday.WithLanguage(cfg.Language))
	log.Debug("language=%s format=%s", a.cal.Language(), cfg.Format)
	return nil
}

func (a *app) render(cmd *cobra.Command, t render.Table) error {
	r := render.New(cmd.OutOrStdout(), a.cfg.Format)
	if cmd.Flags().Changed("header") {
		r.SetHeader(a.header)
	}
	return r.Render(t)
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid year %q", s)
	}
	return y, nil
}

func parseMonth(s string) (time.Month, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid month %q", s)
	}
	m := time.Month(n)
	if err := jpholiday.ValidateMonth(m); err != nil {
		return 0, err
	}
	return m, nil
}

// parseDate accepts YYYY-MM-DD or "today" (the current date in Japan).
func parseDate(s string) (time.Time, error) {
	if s == "today" {
		return time.Now(), nil
	}
	t, err := time.Parse(jpholiday.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// dateArg returns the date in args[0], defaulting to today.
func dateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return parseDate("today")
	}
	return parseDate(args[0])
}
