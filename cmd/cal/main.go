package main

import (
	"os"

	"calkit/internal/cmd"
	"calkit/internal/logger"
)

func main() {
	err := cmd.NewCalCmd().Execute()
	logger.Close()
	os.Exit(cmd.Report(err, os.Stdout, os.Stderr))
}
