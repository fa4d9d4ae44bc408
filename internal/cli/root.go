// Package cli implements the tablo command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hnimtadd/tablo"
	"github.com/hnimtadd/tablo/logger"
	"github.com/hnimtadd/tablo/profile"
	"github.com/hnimtadd/tablo/settings"
)

type flags struct {
	style       string
	profilePath string
	delimiter   string
	header      string
	footer      string
	title       string
	align       string
	maxWidth    int
	fit         bool
	boldHeader  bool
	shadow      int
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "tablo [file]",
		Short: "Render delimited text as a table",
		Long: `tablo reads CSV (or any single-character delimited text) from a file or
standard input and prints it as a table.

Looks are picked with --style or described in a TOML or YAML profile.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	bindFlags(cmd.Flags(), &f)
	return cmd
}

func bindFlags(fl *pflag.FlagSet, f *flags) {
	fl.StringVarP(&f.style, "style", "s", "modern", "border style")
	fl.StringVarP(&f.profilePath, "profile", "p", "", "render profile (.toml, .yaml)")
	fl.StringVarP(&f.delimiter, "delimiter", "d", ",", "field delimiter")
	fl.StringVar(&f.header, "header", "", "panel above the table")
	fl.StringVar(&f.footer, "footer", "", "panel below the table")
	fl.StringVar(&f.title, "title", "", "text written over the top border")
	fl.StringVarP(&f.align, "align", "a", "", "cell alignment: left, center, right")
	fl.IntVarP(&f.maxWidth, "max-width", "w", 0, "shrink the table to this width")
	fl.BoolVar(&f.fit, "fit", false, "shrink the table to the terminal width")
	fl.BoolVar(&f.boldHeader, "bold-header", false, "embolden the first row on terminals")
	fl.IntVar(&f.shadow, "shadow", 0, "drop shadow thickness")
	fl.StringVar(&f.logLevel, "log-level", "", "log to stderr at this level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")
}

// Execute runs the CLI.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string, f flags) error {
	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	rows, err := readRecords(in, f.delimiter)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if f.boldHeader && isTerminal(stdout) && len(rows) > 0 {
		bold := lipgloss.NewStyle().Bold(true)
		for i, cell := range rows[0] {
			rows[0][i] = bold.Render(cell)
		}
	}

	opts, err := tableOptions(f, stdout)
	if err != nil {
		return err
	}

	log, err := newLogger(f, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	t := tablo.New(rows, tablo.WithLogger(log)).With(opts...)
	out, err := t.Render()
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(stdout, out)
	}
	return nil
}

func tableOptions(f flags, stdout io.Writer) ([]settings.TableOption, error) {
	var opts []settings.TableOption
	if f.profilePath != "" {
		p, err := profile.Load(f.profilePath)
		if err != nil {
			return nil, err
		}
		if opts, err = p.Options(); err != nil {
			return nil, err
		}
	} else {
		s, err := profile.StyleByName(f.style)
		if err != nil {
			return nil, err
		}
		opts = append(opts, s)
	}

	p := profile.Profile{
		Align:  f.align,
		Header: f.header,
		Footer: f.footer,
		Title:  f.title,
	}
	extra, err := p.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)
	if f.header != "" || f.footer != "" {
		opts = append(opts, settings.CorrectSpans())
	}
	if f.shadow > 0 {
		opts = append(opts, settings.Shadow(f.shadow))
	}

	limit := f.maxWidth
	if f.fit {
		if w := terminalWidth(stdout); w > 0 && (limit == 0 || w < limit) {
			limit = w
		}
	}
	if limit > 0 {
		opts = append(opts, settings.ShrinkWidth(limit, "…"))
	}
	return opts, nil
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}
		return file, func() { _ = file.Close() }, nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, nil, fmt.Errorf("no input: pass a file or pipe data on stdin")
	}
	return os.Stdin, func() {}, nil
}

// newLogger logs nothing unless a level is asked for.
func newLogger(f flags, stderr io.Writer) (logger.Logger, error) {
	if f.logLevel == "" {
		return logger.Nop(), nil
	}
	level, err := logger.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	typ, err := logger.ParseType(f.logFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Buffer: stderr, Level: level, Type: typ}), nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(file.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(file.Fd())
	if err != nil {
		return 0
	}
	return width
}
