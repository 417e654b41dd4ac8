package cmd

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"calkit/internal/calendar"
	"calkit/internal/config"
)

func NewCalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cal [-y year] [-m month] [-B months] [-A months]",
		Short: "Display a calendar",
		Long: "Display one or more months as a calendar, three months per row.\n\n" +
			"Without arguments the current month is shown. With -y alone a full year starting at\n" +
			"the current month is shown. -B and -A add months before and after the base month.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runCal,
	}
}

// runCal rejects bad arguments before config loading or logger setup can touch the disk
func runCal(cmd *cobra.Command, args []string) error {
	now := time.Now()
	opts, err := calendar.ParseArgs(args, now)
	if err != nil {
		return err
	}

	cfg, log, err := setup("cal")
	if err != nil {
		return err
	}
	return renderCalendar(cmd.OutOrStdout(), opts, now, cfg.Calendar, log)
}

func renderCalendar(out io.Writer, opts calendar.Options, now time.Time, cc config.CalendarConfig, log *logrus.Entry) error {
	names, err := calendar.LookupNames(cc.Locale)
	if err != nil {
		return err
	}

	months := opts.Months(now)
	blocks := calendar.RenderAll(months, names)
	blocks = calendar.NewHighlighter(out, cc.HighlightToday).Apply(blocks, now)

	log.WithFields(logrus.Fields{
		"first":  months[0].String(),
		"last":   months[len(months)-1].String(),
		"months": len(months),
	}).Debug("Rendering calendar")

	return calendar.Print(out, blocks)
}
