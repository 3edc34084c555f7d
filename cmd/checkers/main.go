// Package main is the checkers command: play against the computer in a
// terminal, host games over HTTP, or run computer-only simulations.
package main

import (
	"os"

	"checkers/cmd/checkers/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	root := cli.Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
