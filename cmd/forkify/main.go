package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hammamikhairi/forkify/internal/command"
	"github.com/hammamikhairi/forkify/internal/config"
	"github.com/hammamikhairi/forkify/internal/controller"
	"github.com/hammamikhairi/forkify/internal/directions"
	"github.com/hammamikhairi/forkify/internal/display"
	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/forkify"
	"github.com/hammamikhairi/forkify/internal/likes"
	"github.com/hammamikhairi/forkify/internal/logger"
	"github.com/hammamikhairi/forkify/internal/storage"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagPlain     bool
	flagRecipe    string
	flagAPIURL    string
	flagDB        string
	flagNoPersist bool
	flagLogFile   string
	flagVerbose   bool
	flagQuiet     bool
	flagServings  int
)

// App carries the process-level dependencies so commands can be tested
// without touching the real terminal, network or environment.
type App struct {
	Out       io.Writer
	Err       io.Writer
	GetEnv    func(string) string
	NewSource func(cfg *config.Config, log *logger.Logger) domain.RecipeSource
	IsTTY     func() bool
}

// DefaultApp wires the production dependencies.
func DefaultApp() *App {
	return &App{
		Out:    os.Stdout,
		Err:    os.Stderr,
		GetEnv: nil, // config.Load reads .env and os.Getenv
		NewSource: func(cfg *config.Config, log *logger.Logger) domain.RecipeSource {
			return forkify.NewClient(cfg.APIURL, log,
				forkify.WithHTTPTimeout(cfg.HTTPTimeout),
				forkify.WithAPIKey(cfg.APIKey),
			)
		},
		IsTTY: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := DefaultApp()
	return newRootCmd(app).Execute()
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forkify",
		Short: "Search recipes, scale servings, build a shopping list",
		Long: `forkify is a terminal recipe browser.

Search the recipe API, open a recipe to see its ingredients scaled to
your servings, collect them into a shopping list and keep the recipes
you like.

Examples:
  forkify
  forkify --recipe 47746
  forkify search pizza
  forkify show 47746 --servings 6`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), app)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagAPIURL, "api-url", "", "recipe API base URL (defaults to "+config.EnvAPIURL+" or the public API)")
	pf.StringVar(&flagDB, "db", "", "likes database path (defaults to "+config.EnvDB+")")
	pf.BoolVar(&flagNoPersist, "no-persist", false, "keep likes in memory only")
	pf.StringVar(&flagLogFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose/debug logging")
	pf.BoolVar(&flagQuiet, "quiet", false, "disable all logging")

	cmd.Flags().BoolVar(&flagPlain, "plain", false, "use the plain line interface instead of the full-screen one")
	cmd.Flags().StringVar(&flagRecipe, "recipe", "", "recipe id to open at start (e.g. 47746 or #47746)")

	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newLikesCmd(app))
	cmd.AddCommand(newVersionCmd(app))
	return cmd
}

// ── Wiring ───────────────────────────────────────────────────────

// env is everything a command needs, built from config and flags.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	src     domain.RecipeSource
	store   domain.LikesStore
	likes   *likes.Likes
	cleanup []func()
}

func (e *env) Close() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
}

// newEnv resolves configuration and opens the log file and likes store.
func newEnv(app *App) (*env, error) {
	cfg, err := config.Load(app.GetEnv)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	logOut := openLog(app, cfg.LogFile, e)
	e.log = logger.New(logLevel(cfg), logOut)

	if cfg.NoPersist {
		e.store = storage.NewMemoryStore(e.log)
	} else {
		s, err := storage.NewSQLiteStore(cfg.DBPath, e.log)
		if err != nil {
			e.log.Warn("likes database unavailable, keeping likes in memory: %v", err)
			e.store = storage.NewMemoryStore(e.log)
		} else {
			e.store = s
			e.cleanup = append(e.cleanup, func() { s.Close() })
		}
	}

	e.src = app.NewSource(cfg, e.log)
	e.likes = likes.New(e.store, e.log)
	return e, nil
}

func applyFlags(cfg *config.Config) {
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagRecipe != "" {
		cfg.Recipe = flagRecipe
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	cfg.Plain = cfg.Plain || flagPlain
	cfg.NoPersist = cfg.NoPersist || flagNoPersist
}

func logLevel(cfg *config.Config) logger.Level {
	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelVerbose
	}
	if flagQuiet {
		level = logger.LevelOff
	}
	return level
}

// openLog returns the log destination. Logs go to a file so the
// full-screen UI stays clean; "stderr" selects the console.
func openLog(app *App, path string, e *env) io.Writer {
	if path == "" || path == "stderr" {
		return app.Err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(app.Err, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return app.Err
	}
	e.cleanup = append(e.cleanup, func() { f.Close() })
	stdlog.SetOutput(f)
	stdlog.SetFlags(stdlog.Ltime)
	return f
}

// ── Interactive mode ─────────────────────────────────────────────

func runInteractive(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	e, err := newEnv(app)
	if err != nil {
		return err
	}
	defer e.Close()

	var ctrl *controller.Controller
	var view *display.View
	status := func() display.Status {
		st := ctrl.Status()
		s := display.Status{
			Query: st.Query, Page: st.Page, Pages: st.Pages,
			Recipe: st.Recipe, Servings: st.Servings,
			Likes: st.Likes, Items: st.Items,
		}
		if area, busy := view.Loading(); busy {
			s.Loading = "loading " + area.String()
		}
		return s
	}

	var ui display.Terminal
	if e.cfg.Plain || !app.IsTTY() {
		lui, err := display.NewLineUI(e.cfg.HistoryFile)
		if err != nil {
			return err
		}
		ui = lui
	} else {
		ui = display.NewUI(status)
	}

	view = display.NewView(ui.Printf, e.log)
	ctrl = controller.New(e.src, view, &controller.State{Likes: e.likes}, e.log,
		controller.WithDirections(directions.New(e.log)),
	)

	cli := &cliApp{
		ctrl:   ctrl,
		parser: command.NewKeywordParser(e.log),
		view:   view,
		ui:     ui,
		log:    e.log.With("app"),
	}

	fmt.Fprintln(app.Out, display.RenderBanner())
	fmt.Fprintln(app.Out, display.BannerStyle.Render(display.LineWelcome()))
	fmt.Fprintln(app.Out)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		ui.WaitReady()
		cli.run(ctx, e.cfg.Recipe)
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		e.log.Error("display: %v", err)
		return err
	}
	cancel()
	// The loop must be gone before wait so no spawn races the WaitGroup.
	<-loopDone
	cli.wait()
	return nil
}
