package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/engine"
	"github.com/tartampluch/go-dob/internal/logging"
	"github.com/tartampluch/go-dob/internal/report"
	"github.com/tartampluch/go-dob/internal/tui"
)

// cliOptions holds the flag values and the collaborators shared by every command.
type cliOptions struct {
	debug      bool
	configPath string
	today      string
	ics        bool

	// fetcher downloads remote vCards. Nil means engine.HTTPFetcher.
	fetcher engine.VCardFetcher

	settings config.Settings
	logFile  io.Closer
}

func (o *cliOptions) close() {
	if o.logFile != nil {
		_ = o.logFile.Close()
		o.logFile = nil
	}
}

// noticeError is a calculation error whose notice was already printed.
type noticeError struct{ error }

func (e noticeError) Unwrap() error { return e.error }

func exitCode(err error) int {
	if err != nil {
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           config.CmdRootUse,
		Short:         config.CmdRootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Debug records go to stderr, except under the TUI which owns the terminal.
			var console io.Writer
			if opts.debug && cmd.Name() != config.CmdTUIUse {
				console = cmd.ErrOrStderr()
			}
			opts.close()
			opts.logFile = logging.Setup(opts.debug, console)
			logging.LogStartup(config.CompCLI)

			settings, err := config.LoadSettings(opts.configPath)
			if err != nil {
				return err
			}
			opts.settings = settings
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.StringVar(&opts.configPath, config.FlagConfig, "", config.FlagDescConfig)

	root.AddCommand(
		newCalcCmd(opts),
		newVCardCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)
	return root
}

func addEvalFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVar(&opts.today, config.FlagToday, "", config.FlagDescToday)
	cmd.Flags().BoolVar(&opts.ics, config.FlagICS, false, config.FlagDescICS)
}

func newCalcCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdCalcUse,
		Short: config.CmdCalcShort,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("%s, got %d argument(s)", config.ErrArgsCount, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := engine.Input{Day: args[0], Month: args[1], Year: args[2]}
			return opts.present(cmd, in, "")
		},
	}
	addEvalFlags(cmd, opts)
	return cmd
}

func newVCardCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdVCardUse,
		Short: config.CmdVCardShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rc, err := engine.OpenSource(ctx, args[0], opts.fetcher)
			if err != nil {
				return err
			}
			defer func() { _ = rc.Close() }()

			contacts, err := engine.ReadContacts(ctx, rc)
			if err != nil {
				return err
			}
			contact, err := engine.FirstWithYear(contacts)
			if err != nil {
				return err
			}
			return opts.present(cmd, contact.Input(), contact.Name)
		},
	}
	addEvalFlags(cmd, opts)
	return cmd
}

func newTUICmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdTUIUse,
		Short: config.CmdTUIShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), opts.settings)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersionUse,
		Short: config.CmdVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
				config.AppName,
				config.Version,
				runtime.GOOS,
				runtime.GOARCH,
			)
			return err
		},
	}
}

// calculator honours --today, evaluating at midnight of that local date.
func (o *cliOptions) calculator() (*engine.Calculator, error) {
	if o.today == "" {
		return engine.NewCalculator(), nil
	}
	day, err := time.ParseInLocation(config.DateFormatISO, o.today, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrTodayFlag, err)
	}
	return &engine.Calculator{Clock: engine.FixedClock{Instant: day}}, nil
}

// present calculates in and prints either the report rows or, with --ics, a calendar.
// name heads the output and becomes the event summary when set.
func (o *cliOptions) present(cmd *cobra.Command, in engine.Input, name string) error {
	calc, err := o.calculator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	catalog := report.NewCatalog(config.DefaultLanguage)
	catalog.BurstParticles = o.settings.Burst.Particles

	res, err := calc.Calculate(in)
	if err != nil {
		msg := catalog.Describe(err)
		fmt.Fprintf(cmd.ErrOrStderr(), config.OutNoticeFormat, msg.Title, msg.Text)
		return noticeError{err}
	}

	if o.ics {
		ics, err := engine.NextBirthdayCalendar(res, name, calc.Now())
		if err != nil {
			return err
		}
		_, err = out.Write(ics)
		return err
	}

	rep := catalog.Build(res)
	if name != "" {
		fmt.Fprintf(out, config.OutContactFormat, name)
	}
	if rep.Celebrate {
		fmt.Fprintf(out, config.OutCardFormat,
			catalog.Text(config.TKeyCardTitle),
			catalog.Text(config.TKeyCardSubtitle))
	}
	for _, row := range rep.Rows {
		fmt.Fprintf(out, config.OutRowFormat, row.Label, row.Value)
	}
	return nil
}
