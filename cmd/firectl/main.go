// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/firectl/firectl/pkg/fire"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	apiKey      string
	contextName string
	saveContext string

	start   string
	stop    string
	restart string

	backup     string
	target     string
	backupID   string
	traffic    string
	monitoring string
	ddos       bool
	dns        string
	add        string
	edit       string
	remove     string

	account   bool
	donations bool
	affiliate bool
	install   bool

	wait    bool
	verbose bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	flags := flag.NewFlagSet("firectl", flag.ContinueOnError)

	flags.StringVarP(&opts.apiKey, "api-key", "a", "", "24fire API key (overrides context and FIRE_API_KEY)")
	flags.StringVar(&opts.contextName, "context", "", "named context from ~/.config/firectl/cli.toml")
	flags.StringVar(&opts.saveContext, "save-context", "", "store the given --api-key under this context name and exit")

	flags.StringVarP(&opts.start, "start", "S", "", "start the given KVM server")
	flags.StringVarP(&opts.stop, "stop", "s", "", "stop the given KVM server")
	flags.StringVarP(&opts.restart, "restart", "r", "", "restart the given KVM server")

	flags.StringVarP(&opts.backup, "backup", "b", "", "backup action: list, create, restore or delete (needs --target)")
	flags.StringVarP(&opts.target, "target", "t", "", "service name or internal id the action applies to")
	flags.StringVar(&opts.backupID, "backup-id", "", "backup id for restore/delete")
	flags.StringVarP(&opts.traffic, "traffic", "T", "", "traffic action: usage or logs (needs --target)")
	flags.StringVarP(&opts.monitoring, "monitoring", "m", "", "monitoring action: reading or outages (needs --target)")
	flags.BoolVarP(&opts.ddos, "ddos", "d", false, "show DDoS protection settings (needs --target)")
	flags.StringVar(&opts.dns, "dns", "", "dns action: list, add, edit or remove (needs --target)")
	flags.StringVarP(&opts.add, "add", "A", "", "dns record to add as type,name,data")
	flags.StringVarP(&opts.edit, "edit", "e", "", "dns record to edit as record_id,type,name,data")
	flags.StringVarP(&opts.remove, "remove", "R", "", "dns record id to remove")

	flags.BoolVar(&opts.account, "account", false, "show account information")
	flags.BoolVar(&opts.donations, "donations", false, "show donation page information")
	flags.BoolVar(&opts.affiliate, "affiliate", false, "show affiliate information")
	flags.BoolVarP(&opts.install, "install", "i", false, "reinstall a KVM server (not finished)")

	flags.BoolVar(&opts.wait, "wait", false, "wait until a power action has taken effect")
	flags.BoolVar(&opts.verbose, "verbose", false, "log every API request")

	// --dns without a value means list.
	flags.Lookup("dns").NoOptDefVal = "list"

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(opts *options) error {
	// A .env next to the binary mirrors the panel's documented setup.
	_ = godotenv.Load()

	if opts.saveContext != "" {
		if opts.apiKey == "" {
			return fire.NewValidationError("--save-context needs --api-key")
		}
		if err := saveContextKey(opts.saveContext, opts.apiKey); err != nil {
			return err
		}
		color.New(color.FgGreen).Printf("✓ Stored API key under context %q\n", opts.saveContext)
		return nil
	}

	apiKey, err := resolveAPIKey(opts)
	if err != nil {
		return err
	}

	var clientOpts []fire.ClientOption
	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		clientOpts = append(clientOpts, fire.WithLogger(logger))
	}

	client := fire.New(apiKey, clientOpts...)
	ctx := context.Background()

	cmd, err := selectCommand(opts)
	if err != nil {
		return err
	}

	return execute(ctx, client, cmd)
}

// resolveAPIKey resolves the key in precedence order: flag, explicit context,
// active context, environment. An empty key is allowed; the first
// authenticated call then fails with an auth error.
func resolveAPIKey(opts *options) (string, error) {
	if opts.apiKey != "" {
		return opts.apiKey, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}

	if opts.contextName != "" {
		c := cfg.find(opts.contextName)
		if c == nil {
			return "", fire.NewValidationError(fmt.Sprintf("unknown context %q", opts.contextName))
		}
		return c.APIKey, nil
	}

	if c := cfg.find(cfg.ActiveContext); c != nil {
		return c.APIKey, nil
	}

	return os.Getenv("FIRE_API_KEY"), nil
}