// Package cli builds the hrctl command tree. Every command is bound to a
// guarded page and talks to the server through internal/client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adamanr/hrdesk/internal/client"
	"github.com/adamanr/hrdesk/internal/config"
	"github.com/adamanr/hrdesk/internal/guard"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/adamanr/hrdesk/internal/session"
	logging "github.com/adamanr/hrdesk/internal/utils"
	"github.com/spf13/cobra"
)

const pageAnnotation = "page"

var (
	ErrNotLoggedIn = errors.New("not logged in, run `hrctl login` first")
	ErrForbidden   = errors.New("access denied: this page requires the hr role")
)

// Options lets tests replace the process-wide pieces.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	In        io.Reader
	ConfigDir string
	Store     session.Store
}

type app struct {
	opts    Options
	verbose bool
	apiURL  string

	cfg    *config.ClientConfig
	store  session.Store
	api    *client.Client
	notify pages.Notifier
	logger *slog.Logger
}

// Execute runs cmd and returns the process exit status. Errors the pages have
// already shown as a notice are not printed a second time.
func Execute(ctx context.Context, cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if !errors.Is(err, pages.ErrReported) {
		fmt.Fprintln(errOut, "hrctl:", err)
	}

	return 1
}

// NewRootCommand assembles hrctl.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}

	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "hrctl",
		Short:         "hrctl - command line client for the hrdesk HR service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(); err != nil {
				return err
			}

			return a.authorize(cmd)
		},
	}

	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.SetIn(opts.In)

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Mirror the log to stderr")
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Server base URL (overrides hrctl.toml and "+config.APIURLEnv+")")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.menuCmd(),
		a.profileCmd(),
		a.employeesCmd(),
		a.vacationsCmd(),
		a.contractsCmd(),
		a.departmentsCmd(),
		a.analyticsCmd(),
	)

	return root
}

func (a *app) setup() error {
	dir := a.opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = config.Dir(); err != nil {
			return err
		}
	}

	cfg, err := config.LoadClient(dir)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}
	a.cfg = cfg

	var console io.Writer
	if a.verbose {
		console = a.opts.Err
	}
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = logging.SetupLogger(cfg.LogFile, console, level, "hrctl")

	a.store = a.opts.Store
	if a.store == nil {
		a.store = session.NewFileStore(dir)
	}

	a.api = client.New(cfg.APIURL, a.store, client.WithTimeout(cfg.Timeout), client.WithLogger(a.logger))
	a.notify = pages.NewConsoleNotifier(a.opts.Out)

	return nil
}

// authorize runs the route guard for the page the command is bound to.
func (a *app) authorize(cmd *cobra.Command) error {
	page, ok := boundPage(cmd)
	if !ok {
		return nil
	}

	s, err := a.store.Load()
	if err != nil {
		return err
	}

	switch guard.Check(s, page) {
	case guard.RedirectLogin:
		return ErrNotLoggedIn
	case guard.RedirectForbidden:
		a.logger.Warn("Page denied", slog.String("page", string(page)), slog.String("role", s.Role))
		return ErrForbidden
	default:
		return nil
	}
}

// boundPage returns the page of cmd or of its nearest annotated parent.
func boundPage(cmd *cobra.Command) (guard.Page, bool) {
	for c := cmd; c != nil; c = c.Parent() {
		if p, ok := c.Annotations[pageAnnotation]; ok {
			return guard.Page(p), true
		}
	}

	return "", false
}

func onPage(page guard.Page) map[string]string {
	return map[string]string{pageAnnotation: string(page)}
}

func (a *app) println(args ...any) {
	_, _ = fmt.Fprintln(a.opts.Out, args...)
}
