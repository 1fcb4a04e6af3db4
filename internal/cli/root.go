// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

// Package cli implements the jfmt command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/halfmoss/jfmt"
	"github.com/halfmoss/jfmt/fsutil"
	"github.com/halfmoss/jfmt/internal/config"
	"github.com/halfmoss/jfmt/internal/logging"
)

// BuildInfo carries version metadata injected at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

type options struct {
	indent     int
	tab        bool
	compact    bool
	write      bool
	color      string
	configPath string
	debug      bool
}

// NewRootCommand constructs the jfmt root command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "jfmt [file]",
		Short: "Reformat a JSON document",
		Long: `jfmt reads a single JSON document, validates it, and rewrites it with
uniform indentation while preserving the exact text of every number and
string. With no file argument, or with "-", it reads standard input and
writes standard output.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				logging.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, opts, path)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.indent, "indent", "i", 4, "spaces per indentation level")
	flags.BoolVarP(&opts.tab, "tab", "t", false, "indent with tabs instead of spaces")
	flags.BoolVarP(&opts.compact, "compact", "c", false, "produce single-line output")
	flags.BoolVarP(&opts.write, "write", "w", false, "rewrite the input file in place")
	flags.StringVar(&opts.color, "color", "", "colorize output: auto, always or never")
	flags.StringVar(&opts.configPath, "config", "", "path to a config file")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	fromStdin := path == "" || path == "-"
	if opts.write && fromStdin {
		return fmt.Errorf("-w requires a file argument")
	}

	cfg, err := loadConfig(opts, path, fromStdin)
	if err != nil {
		return err
	}
	mergeFlags(cmd, opts, cfg)

	policy := jfmt.Spaces(cfg.Indent)
	switch {
	case cfg.Compact:
		policy = jfmt.Compact()
	case cfg.Tab:
		policy = jfmt.Tabs()
	}
	logging.Default().Debug("resolved settings",
		"indent", cfg.Indent, "tab", cfg.Tab, "compact", cfg.Compact, "color", cfg.Color)

	if opts.write {
		return rewriteFile(path, policy)
	}

	in := cmd.InOrStdin()
	if !fromStdin {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if useColor(cfg.Color, out) {
		policy.Color = jfmt.DefaultColors
		if out == os.Stdout {
			out = colorable.NewColorableStdout()
		}
	}
	if err := jfmt.Format(out, in, policy); err != nil {
		return describeError(err, path)
	}
	_, err = io.WriteString(out, "\n")
	return err
}

// rewriteFile reformats path in place. The target is replaced only after the
// whole document has parsed and formatted cleanly; malformed input leaves it
// untouched.
func rewriteFile(path string, policy jfmt.Policy) error {
	err := fsutil.WriteFile(path, func(w io.Writer) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := jfmt.Format(w, f, policy); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	})
	if err != nil {
		return describeError(err, path)
	}
	return nil
}

func loadConfig(opts *options, path string, fromStdin bool) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadPath(opts.configPath)
	}
	dir := "."
	if !fromStdin {
		dir = filepath.Dir(path)
	}
	return config.Load(dir)
}

// mergeFlags overlays flags the user set explicitly onto cfg.
func mergeFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("indent") {
		cfg.Indent = opts.indent
	}
	if flags.Changed("tab") {
		cfg.Tab = opts.tab
	}
	if flags.Changed("compact") {
		cfg.Compact = opts.compact
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// describeError prefixes formatting errors with the input path and keeps
// position information from syntax errors intact.
func describeError(err error, path string) error {
	if path == "" || path == "-" {
		path = "stdin"
	}
	return fmt.Errorf("%s: %w", path, err)
}
