package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/southpawriter02/glance"
	"github.com/southpawriter02/glance/bubbletea"
	"github.com/southpawriter02/glance/chroma"
	"github.com/southpawriter02/glance/clipboard"
	"github.com/southpawriter02/glance/fs"
	"github.com/southpawriter02/glance/git"
	"github.com/southpawriter02/glance/gitdiff"
	"github.com/southpawriter02/glance/jsonl"
	"github.com/southpawriter02/glance/lipgloss"
	"github.com/southpawriter02/glance/toml"
	"github.com/southpawriter02/glance/worddiff"
	"github.com/spf13/cobra"
)

// ErrNoChanges is returned when the diff contains no changes to display.
var ErrNoChanges = errors.New("no changes to display")

// DiffApp reads one diff and displays it. It is the non-interactive
// pipe mode: git diff | glance.
type DiffApp struct {
	Stdin  io.Reader
	Piped  bool
	Commit string
	Repo   string

	Parser glance.Parser
	Git    glance.GitRunner
	Viewer glance.Viewer
}

// Run resolves the diff source, parses it, and displays it.
func (a *DiffApp) Run(ctx context.Context) error {
	var r io.Reader
	switch {
	case a.Piped:
		r = a.Stdin
	case a.Commit != "":
		out, err := a.Git.Show(ctx, a.Repo, a.Commit)
		if err != nil {
			return err
		}
		r = strings.NewReader(out)
	default:
		out, err := a.Git.WorkingDiff(ctx, a.Repo)
		if err != nil {
			return err
		}
		r = strings.NewReader(out)
	}

	diff, err := a.Parser.Parse(r)
	if err != nil {
		return err
	}
	if len(diff.Files) == 0 {
		return ErrNoChanges
	}
	return a.Viewer.View(ctx, diff)
}

// options holds the command-line flags.
type options struct {
	theme   string
	commit  string
	presets string
	repo    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "glance [workspace]",
		Short: "Terminal code-review companion",
		Long: `glance browses diffs side by side with word-level highlighting.

With a piped diff it runs as a plain viewer:

  git diff | glance

Otherwise it opens the full workspace UI with quick-open search,
a file tree, and inference presets.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.repo == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				opts.repo = wd
			}
			if len(args) == 1 {
				opts.repo = args[0]
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "dark", "color theme (dark or light)")
	cmd.Flags().StringVar(&opts.commit, "commit", "", "show the diff of a specific commit")
	cmd.Flags().StringVar(&opts.presets, "presets", "", "path to the presets file")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	theme := lipgloss.ThemeByName(opts.theme)
	detector := chroma.NewDetector()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return err
	}
	differ := worddiff.NewDiffer()

	viewer := bubbletea.NewViewer(theme, detector, tokenizer, differ, clipboard.New())

	if piped(os.Stdin) || opts.commit != "" {
		app := &DiffApp{
			Stdin:  os.Stdin,
			Piped:  piped(os.Stdin),
			Commit: opts.commit,
			Repo:   opts.repo,
			Parser: gitdiff.NewParser(),
			Git:    git.NewRunner(),
			Viewer: viewer,
		}
		return app.Run(ctx)
	}

	return runWorkspaceUI(ctx, opts, theme, detector, tokenizer, differ)
}

// runWorkspaceUI wires the full application shell and blocks until the
// user quits.
func runWorkspaceUI(ctx context.Context, opts *options, theme glance.Theme, detector glance.LanguageDetector, tokenizer glance.Tokenizer, differ glance.WordDiffer) error {
	stateDir := fs.DefaultStateDir()
	logger, closeLog, err := newLogger(stateDir)
	if err != nil {
		return err
	}
	defer closeLog()

	history := jsonl.NewHistory(filepath.Join(stateDir, "history.jsonl"))

	workspaces, err := fs.NewWorkspaceService(history)
	if err != nil {
		return err
	}

	index, err := fs.NewIndex(opts.repo, history)
	if err != nil {
		return err
	}
	if err := index.Build(ctx); err != nil {
		logger.Warn("index build failed", "root", opts.repo, "error", err)
	}

	presetsPath := opts.presets
	if presetsPath == "" {
		presetsPath = filepath.Join(fs.DefaultConfigDir(), "presets.toml")
	}
	presets, err := toml.NewPresetStore().Load(presetsPath)
	if err != nil {
		logger.Warn("could not load presets", "path", presetsPath, "error", err)
		presets = glance.DefaultPresets()
	}

	gitRunner := git.NewRunner()
	out, err := gitRunner.WorkingDiff(ctx, opts.repo)
	var diff *glance.Diff
	if err != nil {
		logger.Warn("no working diff", "repo", opts.repo, "error", err)
		diff = &glance.Diff{}
	} else {
		diff, err = gitdiff.NewParser().Parse(strings.NewReader(out))
		if err != nil {
			return err
		}
	}

	app, err := bubbletea.NewApp(bubbletea.AppConfig{
		Index:      index,
		Workspaces: workspaces,
		Loader:     fs.NewTree(),
		Presets:    presets,
		Theme:      theme,
		Diff:       diff,
		Detector:   detector,
		Tokenizer:  tokenizer,
		Differ:     differ,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}

// newLogger writes structured JSON logs to a file in the state
// directory, keeping the terminal clean for the UI.
func newLogger(stateDir string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(stateDir, "glance.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, func() { f.Close() }, nil
}

// piped reports whether f carries piped input rather than a terminal.
func piped(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, ErrNoChanges) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
		os.Exit(1)
	}
}
