package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minefield/internal/console"
	"github.com/vancomm/minefield/internal/mines"
)

var (
	log = logrus.New()

	logPath string
	verbose bool
)

func init() {
	const usage = "write diagnostics to a rotating log file"
	flag.StringVar(&logPath, "log", "", usage)
	flag.StringVar(&logPath, "l", "", usage+" (shorthand)")
	flag.BoolVar(&verbose, "v", false, "log every action")
}

// setupLogging keeps stdout free for the board: diagnostics only go to the
// log file, and nowhere if none was given.
func setupLogging() {
	log.SetOutput(io.Discard)
	if logPath == "" {
		return
	}

	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		logrus.Fatalf("unable to open log file %s: %s", logPath, err.Error())
	}
	log.AddHook(hook)
}

func main() {
	flag.Parse()

	setupLogging()

	c := console.New(os.Stdin, os.Stdout, log)
	if err := c.Run(mines.NewClockSource()); err != nil {
		log.WithError(err).Error("game aborted")
		logrus.Fatal(err)
	}
}
