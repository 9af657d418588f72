package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

const appName = "nightswitch"

// Options is the set of subcommands
type Options struct {
	Run   RunCmd   `command:"run" description:"run day/night switching daemon"`
	Get   GetCmd   `command:"get" description:"show settings"`
	Set   SetCmd   `command:"set" description:"change a setting"`
	Reset ResetCmd `command:"reset" description:"reset a setting to its default"`
}

var revision = "unknown"

// buildType is set at link time, "debug" turns on debug messages regardless of --dbg
var buildType = "release"

func main() {
	fmt.Printf("%s %s\n", appName, revision)

	var opts Options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug || buildType == "debug" {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel func()) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
