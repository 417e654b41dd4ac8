package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calkit/internal/config"
)

var configConfigPath string

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE:  runConfig,
	}
	cmd.Flags().StringVarP(&configConfigPath, "config", "c", "", "Path to config file")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration\n")
	fmt.Fprintf(out, "=============\n\n")
	fmt.Fprintf(out, "Calendar:\n")
	fmt.Fprintf(out, "  Locale: %s\n", cfg.Calendar.Locale)
	fmt.Fprintf(out, "  Highlight Today: %s\n", cfg.Calendar.HighlightToday)
	fmt.Fprintf(out, "\nTouch:\n")
	fmt.Fprintf(out, "  Time Layouts:\n")
	for _, layout := range cfg.Touch.TimeLayouts {
		fmt.Fprintf(out, "    %s\n", layout)
	}
	fmt.Fprintf(out, "\nLog:\n")
	fmt.Fprintf(out, "  Level: %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  Console: %v\n", cfg.Log.Console)
	fmt.Fprintf(out, "  File Path: %s\n", orNotSet(cfg.Log.FilePath))
	if cfg.Log.FilePath != "" {
		fmt.Fprintf(out, "  Rotation Time: %s\n", cfg.Log.RotationTime)
		fmt.Fprintf(out, "  Max Size: %d MB\n", cfg.Log.MaxSize)
		fmt.Fprintf(out, "  Max Backups: %d\n", cfg.Log.MaxBackups)
		fmt.Fprintf(out, "  Max Age: %d days\n", cfg.Log.MaxAge)
		fmt.Fprintf(out, "  Compress: %v\n", cfg.Log.Compress)
	}

	return nil
}

func orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not set)"
	}
	return s
}
