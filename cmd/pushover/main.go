package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"pushover/internal/config"
	"pushover/internal/dispatch"
	"pushover/internal/journal"
	"pushover/internal/transport"
	"pushover/pkg/logx"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pushover", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		title    = fs.String("t", "", "title of the notification")
		message  = fs.String("m", "", "message of the notification (required)")
		priority = fs.Int("p", 0, "priority (-2 to 2, default 0)")
		appToken = fs.String("app-token", "", "override the configured application token")
		cfgPath  = fs.String("config", "", "path to the config file (default: search the standard locations)")
		verbose  = fs.Bool("v", false, "verbose logging")
	)
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		// flag already printed the diagnostic and usage.
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return 1
	}
	if *message == "" {
		fmt.Fprintln(os.Stderr, "message is required")
		fs.Usage()
		return 1
	}
	if *priority < -2 || *priority > 2 {
		fmt.Fprintln(os.Stderr, "priority must be between -2 and 2")
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading configuration:", err)
		return 1
	}

	logCfg := logx.Config{Level: cfg.Logging.Level, Journald: cfg.Logging.Journald}
	if *verbose {
		logCfg.Level = "debug"
	}
	log := logx.New(logCfg)

	jrn, err := journal.Open(cfg.Journal.Path, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error opening journal:", err)
		return 1
	}
	if jrn != nil {
		defer jrn.Close()
	}

	connect, read, write, err := cfg.Transport.Timeouts()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error in transport configuration:", err)
		return 1
	}
	client := transport.NewClient(transport.Options{
		ConnTimeout:  connect,
		ReadTimeout:  read,
		WriteTimeout: write,
	})

	d := dispatch.New(client, log)
	if jrn != nil {
		d.SetJournal(jrn)
	}

	req := dispatch.NewRequest(cfg, dispatch.Params{
		Title:         *title,
		Message:       *message,
		Priority:      *priority,
		TokenOverride: *appToken,
	})

	if err := d.Dispatch(context.Background(), cfg, req); err != nil {
		fmt.Fprintln(os.Stderr, "error sending notification:", err)
		return 1
	}

	// Success is silent: no stdout output, exit 0.
	return 0
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: pushover -m <message> [OPTIONS]")
	fmt.Fprintln(w, "  -t <title>        title of the notification")
	fmt.Fprintln(w, "  -m <message>      message of the notification (required)")
	fmt.Fprintln(w, "  -p <priority>     priority (-2 to 2, default: 0)")
	fmt.Fprintln(w, "  --app-token <t>   override the configured application token")
	fmt.Fprintln(w, "  --config <path>   config file path")
	fmt.Fprintln(w, "  -v                verbose logging")
	fmt.Fprintln(w, "  -h, --help        show this help message")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  Reads configuration from /etc/pushover/config.toml")
	fmt.Fprintln(w, "  Falls back to etc/pushover/config.toml for development")
}
