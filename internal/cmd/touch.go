package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"calkit/internal/config"
	"calkit/internal/touch"
)

func NewTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch [--no-create] [--time=<datetime>] <file1> [file2 ...]",
		Short: "Create files or update their timestamps",
		Long: "Set the access and modification times of each file to the current time or to\n" +
			"the time given with --time. Missing files are created unless --no-create is set.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runTouch,
	}
}

func runTouch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, touch.Usage)
		return nil
	}

	cfg, log, err := setup("touch")
	if err != nil {
		return err
	}
	touchFiles(out, args, afero.NewOsFs(), cfg.Touch, log)
	return nil
}

func touchFiles(out io.Writer, args []string, fsys afero.Fs, tc config.TouchConfig, log *logrus.Entry) touch.Summary {
	req := touch.ParseArgs(args, tc.TimeLayouts, time.Local)
	for _, notice := range req.Notices {
		fmt.Fprintln(out, notice)
		log.Warn(notice)
	}

	sum := touch.NewUpdater(fsys, out, log).Run(req)

	log.WithFields(logrus.Fields{
		"updated":   sum.Updated,
		"skipped":   sum.Skipped,
		"failed":    sum.Failed,
		"no_create": req.NoCreate,
		"explicit":  req.HasTime(),
	}).Debug("Touch finished")

	return sum
}
