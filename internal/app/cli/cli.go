// Package cli implements hrmctl, a terminal client for the HRM backend built
// on the same services as the portal.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"hrmportal/internal/app/hrmapi"
	"hrmportal/internal/platform/config"
	"hrmportal/internal/platform/crypto"
	"hrmportal/internal/platform/metrics"
	"hrmportal/internal/platform/session"
	"hrmportal/internal/platform/storage"
)

// ErrUsage marks a malformed command line.
var ErrUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(ctx context.Context, args []string) error
}

type App struct {
	Config  config.Config
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Logger  *slog.Logger
	Tokens  *session.FileStore
	API     *hrmapi.API
	Metrics *metrics.Collector
	// Store is opened from Config on first use when nil.
	Store storage.Store
	Now   func() time.Time
}

func New(cfg config.Config, in io.Reader, out, errOut io.Writer, logger *slog.Logger) (*App, error) {
	sealer, err := crypto.New(cfg.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("token key: %w", err)
	}
	tokens := session.NewFileStore(cfg.TokenFile, sealer)
	collector := metrics.New()
	api, err := hrmapi.New(cfg, cfg.BaseURL(), hrmapi.Deps{Tokens: tokens, Metrics: collector, Logger: logger})
	if err != nil {
		return nil, err
	}
	return &App{
		Config:  cfg,
		In:      in,
		Out:     out,
		Err:     errOut,
		Logger:  logger,
		Tokens:  tokens,
		API:     api,
		Metrics: collector,
		Now:     time.Now,
	}, nil
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"login":           {"authenticate and store the session token", a.runLogin},
		"logout":          {"forget the stored session token", a.runLogout},
		"whoami":          {"show the claims of the stored token", a.runWhoami},
		"roles":           {"list roles or assign one to a user", a.runRoles},
		"summary":         {"HR overview counts", a.runSummary},
		"employees":       {"list, get or export employees", a.runEmployees},
		"organizations":   {"manage organizations", a.runOrganizations},
		"attendance":      {"list attendance records", a.runAttendance},
		"regularizations": {"list, create or review attendance regularizations", a.runRegularizations},
		"leaves":          {"leave requests, policies and balances", a.runLeaves},
		"payroll":         {"payroll records, reports, payslips and salary structures", a.runPayroll},
		"holiday":         {"read or save an organization's holiday calendar", a.runHoliday},
		"upload":          {"upload a file and print its URL", a.runUpload},
	}
}

// Run dispatches args[0] to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	cmds := a.commands()
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage(cmds)
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}
	cmd, ok := cmds[args[0]]
	if !ok {
		a.usage(cmds)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	err := cmd.run(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err == nil && a.Metrics != nil && a.Logger != nil {
		a.Logger.Debug("command finished", "command", args[0], "metrics", a.Metrics.Snapshot())
	}
	return err
}

func (a *App) usage(cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(a.Err, "usage: hrmctl <command> [flags]")
	fmt.Fprintln(a.Err)
	for _, name := range names {
		fmt.Fprintf(a.Err, "  %-16s %s\n", name, cmds[name].summary)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("hrmctl "+name, flag.ContinueOnError)
	fs.SetOutput(a.Err)
	return fs
}

// parse wraps flag errors as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// subcommand splits "list -page 2" into its verb and the remaining args.
func subcommand(args []string, verbs ...string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: expected one of %s", ErrUsage, strings.Join(verbs, ", "))
	}
	for _, verb := range verbs {
		if args[0] == verb {
			return verb, args[1:], nil
		}
	}
	return "", nil, fmt.Errorf("%w: unknown subcommand %q, expected one of %s", ErrUsage, args[0], strings.Join(verbs, ", "))
}

func positional(fs *flag.FlagSet, n int, names ...string) ([]string, error) {
	if fs.NArg() != n {
		return nil, fmt.Errorf("%w: expected %s", ErrUsage, strings.Join(names, " "))
	}
	return fs.Args(), nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) store(ctx context.Context) (storage.Store, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	store, err := storage.Open(ctx, a.Config)
	if err != nil {
		return nil, err
	}
	a.Store = store
	return store, nil
}

// save writes a downloaded or rendered file to the configured store and
// prints where it went.
func (a *App) save(ctx context.Context, dir, name string, body []byte, contentType string) error {
	store, err := a.store(ctx)
	if err != nil {
		return err
	}
	info, err := store.Save(ctx, dir+"/"+storage.SanitizeFilename(name), bytes.NewReader(body), contentType)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return a.print(info)
}

func (a *App) readLine(prompt string) (string, error) {
	if a.In == nil {
		return "", fmt.Errorf("%w: %s required", ErrUsage, strings.TrimSuffix(prompt, ": "))
	}
	fmt.Fprint(a.Err, prompt)
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// stringList collects a repeated flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
