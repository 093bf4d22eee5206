// Package main is the entry point for vcoctl, the orchestrator portal CLI.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/sdwanops/vcoctl/internal/config"
	"github.com/sdwanops/vcoctl/internal/profiles"
	"github.com/sdwanops/vcoctl/pkg/client"
	"github.com/sdwanops/vcoctl/pkg/types"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const usageText = `Usage: vcoctl [flags] <command> [args]

Commands:
  property list              List system properties
  property get <name>        Show one system property
  gateway list               List network gateways
  gateway metrics <id>       Fetch status metrics for one gateway
  version                    Print version information

Credentials resolve from flags, then VCOCTL_* environment variables, then
the selected profile. Password login prompts on the terminal when no token
is available.

Flags:
`

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("vcoctl", flag.ExitOnError)
	fs.StringVar(&cfg.FQDN, "fqdn", cfg.FQDN, "orchestrator FQDN, e.g. vco12-example.velocloud.net")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "override the https://<fqdn>/portal/rest base URL")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "API token (overrides password login)")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "username for password login")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile name from the profiles file")
	fs.StringVar(&cfg.ProfilesFile, "profiles-file", cfg.ProfilesFile, "profiles file location")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "human-readable log output")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	showPasswords := fs.Bool("show-passwords", false, "print password property values instead of masking them")
	asJSON := fs.Bool("json", false, "emit JSON instead of tables")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	setupLogging(cfg)

	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, args, *showPasswords, *asJSON); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.DevMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("service", "vcoctl").Str("version", version).Logger()
	}
}

func run(ctx context.Context, cfg config.Config, args []string, showPasswords, asJSON bool) error {
	switch args[0] {
	case "version":
		fmt.Printf("vcoctl %s (commit %s, built %s)\n", version, commit, buildDate)
		return nil
	case "property":
		if len(args) < 2 {
			return errors.New("property needs a subcommand: list or get")
		}
		c, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		switch args[1] {
		case "list":
			return propertyList(ctx, c, showPasswords, asJSON)
		case "get":
			if len(args) != 3 {
				return errors.New("property get needs exactly one property name")
			}
			return propertyGet(ctx, c, args[2], showPasswords, asJSON)
		default:
			return fmt.Errorf("unknown property subcommand %q", args[1])
		}
	case "gateway":
		if len(args) < 2 {
			return errors.New("gateway needs a subcommand: list or metrics")
		}
		c, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		switch args[1] {
		case "list":
			return gatewayList(ctx, c, asJSON)
		case "metrics":
			return gatewayMetrics(ctx, c, args[2:])
		default:
			return fmt.Errorf("unknown gateway subcommand %q", args[1])
		}
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// connect resolves credentials and builds an authenticated client. A token
// wins over password login; passwords come from VCOCTL_PASSWORD or, when
// stdin is a terminal, an interactive prompt.
func connect(ctx context.Context, cfg config.Config) (*client.Client, error) {
	username := cfg.Username
	if cfg.Token == "" || (cfg.FQDN == "" && cfg.BaseURL == "") {
		prof, err := lookupProfile(cfg)
		if err != nil {
			return nil, err
		}
		if prof != nil {
			if cfg.FQDN == "" {
				cfg.FQDN = prof.FQDN
			}
			if username == "" {
				username = prof.Username
			}
			if cfg.Token == "" {
				cfg.Token = prof.Token()
			}
		}
	}

	clientCfg := client.Config{
		FQDN:       cfg.FQDN,
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Token,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
	}

	if clientCfg.Token != "" {
		return client.New(clientCfg)
	}

	if username == "" {
		return nil, errors.New("no token and no username: set -token, -username, or a profile")
	}
	password, err := resolvePassword(username)
	if err != nil {
		return nil, err
	}
	return client.Login(ctx, clientCfg, username, password)
}

func lookupProfile(cfg config.Config) (*profiles.Profile, error) {
	path := cfg.ProfilesFile
	if path == "" {
		var err error
		path, err = profiles.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	file, err := profiles.Load(path)
	if err != nil {
		// A missing profiles file is only fatal when a profile was asked
		// for by name.
		if errors.Is(err, profiles.ErrNoProfiles) && cfg.Profile == "" {
			return nil, nil
		}
		return nil, err
	}
	prof, err := file.Lookup(cfg.Profile)
	if err != nil {
		if cfg.Profile == "" {
			// The file exists but names no default; fall through to flags
			// and environment.
			return nil, nil
		}
		return nil, err
	}
	return &prof, nil
}

func resolvePassword(username string) (string, error) {
	if p := os.Getenv("VCOCTL_PASSWORD"); p != "" {
		return p, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no password: set VCOCTL_PASSWORD or run on a terminal")
	}
	fmt.Fprintf(os.Stderr, "Password for %s: ", username)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

const maskedValue = "********"

func propertyList(ctx context.Context, c *client.Client, showPasswords, asJSON bool) error {
	props, err := c.GetSystemProperties(ctx)
	if err != nil {
		return err
	}
	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	if !showPasswords {
		for i := range props {
			if props[i].IsPassword.Bool() {
				props[i].Value = maskedValue
			}
		}
	}
	if asJSON {
		return printJSON(props)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tRO\tMODIFIED\tVALUE")
	for _, p := range props {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.DataType, p.IsReadOnly, p.Modified, p.Value)
	}
	return tw.Flush()
}

func propertyGet(ctx context.Context, c *client.Client, name string, showPasswords, asJSON bool) error {
	byName, err := c.GetSystemPropertiesMap(ctx)
	if err != nil {
		return err
	}
	p, ok := byName[name]
	if !ok {
		return fmt.Errorf("no system property named %q", name)
	}
	if p.IsPassword.Bool() && !showPasswords {
		p.Value = maskedValue
	}
	if asJSON {
		return printJSON(p)
	}
	fmt.Printf("%s = %s\n", p.Name, p.Value)
	if p.Description != nil && *p.Description != "" {
		fmt.Printf("  %s\n", *p.Description)
	}
	fmt.Printf("  type=%s readOnly=%s created=%s modified=%s\n",
		p.DataType, p.IsReadOnly, p.Created, p.Modified)
	return nil
}

func gatewayList(ctx context.Context, c *client.Client, asJSON bool) error {
	gws, err := c.GetNetworkGateways(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(gws)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATE\tIP\tEDGES\tLAST CONTACT")
	for _, gw := range gws {
		ip := "unset"
		if gw.IPAddress != nil {
			ip = gw.IPAddress.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			gw.ID, gw.Name, gw.GatewayState, ip, gw.ConnectedEdges, gw.LastContact)
	}
	return tw.Flush()
}

func gatewayMetrics(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("gateway metrics", flag.ContinueOnError)
	id := fs.Int("id", 0, "gateway id")
	startFlag := fs.String("start", "", "interval start (RFC 3339, default 1h ago)")
	endFlag := fs.String("end", "", "interval end (RFC 3339, default open)")
	metricsFlag := fs.String("metrics", "tunnelCount,cpuPct,memoryPct",
		"comma-separated metric names")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("gateway metrics needs -id")
	}

	start := types.FromTime(time.Now().Add(-time.Hour))
	if *startFlag != "" {
		var err error
		start, err = types.ParseRFC3339(*startFlag)
		if err != nil {
			return fmt.Errorf("bad -start: %w", err)
		}
	}
	var end *types.DateTime
	if *endFlag != "" {
		e, err := types.ParseRFC3339(*endFlag)
		if err != nil {
			return fmt.Errorf("bad -end: %w", err)
		}
		end = &e
	}

	var metrics []types.GatewayMetric
	for _, m := range strings.Split(*metricsFlag, ",") {
		if m = strings.TrimSpace(m); m != "" {
			metrics = append(metrics, types.GatewayMetric(m))
		}
	}

	raw, err := c.GetGatewayStatusMetrics(ctx, *id, start, end, metrics...)
	if err != nil {
		return err
	}
	return printJSON(raw)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
