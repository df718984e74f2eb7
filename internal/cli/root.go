// Package cli implements the nested command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybergodev/nested"
)

var (
	rootShort = "Read and edit values inside JSON, YAML and TOML documents by path"

	rootLong = longDesc(`
		nested addresses values inside a document with a dot-delimited path such as
		"users.0.name" or, with --segments, an explicit sequence such as '["example.com", "ttl"]'.

		Settings can also come from a config file (--config) or from the environment:
		NESTED_FORMAT, NESTED_COLOR, NESTED_MAX_DEPTH, NESTED_MAX_LIST_SIZE and NESTED_VERBOSE.
	`)
)

// app carries the state shared by every command once settings are resolved
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configFile string
	settings   *Settings
	processor  *nested.Processor
	printer    *Printer
}

// Execute runs the CLI against the process streams and returns the exit code
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		printer := a.printer
		if printer == nil {
			printer = NewPrinter(out, errOut, colorNever)
		}
		printer.Error(err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nested",
		Short:         rootShort,
		Long:          rootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (YAML or TOML)")
	flags.String("format", string(FormatAuto), "Document format: auto, json, yaml or toml")
	flags.String("color", colorAuto, "Color output: auto, always or never")
	flags.Int("max-depth", nested.MaxDepth, "Maximum number of path tokens")
	flags.Int("max-list-size", nested.MaxListSize, "Maximum absolute sequence index")
	flags.BoolP("verbose", "v", false, "Log engine operations to stderr")

	cmd.AddCommand(
		newGetCmd(a),
		newExistsCmd(a),
		newSetCmd(a),
		newDeleteCmd(a),
		newDepthCmd(a),
		newLeavesCmd(a),
		newPathsCmd(a),
	)
	return cmd
}

// setup resolves settings and builds the processor, logger and printer
func (a *app) setup(cmd *cobra.Command) error {
	settings, err := LoadSettings(cmd.Flags(), a.configFile)
	if err != nil {
		return err
	}
	a.settings = settings
	a.printer = NewPrinter(a.out, a.errOut, settings.Color)

	level := slog.LevelWarn
	if settings.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	a.processor = nested.New(settings.EngineConfig())
	a.processor.SetLogger(logger)
	return nil
}

// document is a decoded input file
type document struct {
	name   string
	format Format
	root   any
}

// load reads and decodes FILE. "-" reads standard input.
func (a *app) load(name string) (*document, error) {
	var content []byte
	var err error
	if name == "-" {
		content, err = io.ReadAll(a.in)
	} else {
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	format, err := ParseFormat(a.settings.Format)
	if err != nil {
		return nil, err
	}
	format = DetectFormat(format, name, content)

	root, err := Decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &document{name: name, format: format, root: root}, nil
}

// save writes the document back to its file, keeping the file mode
func (a *app) save(doc *document) error {
	if doc.name == "-" {
		return errors.New("--in-place cannot be used with standard input")
	}
	encoded, err := Encode(doc.root, doc.format)
	if err != nil {
		return err
	}
	info, err := os.Stat(doc.name)
	if err != nil {
		return fmt.Errorf("stat %s: %w", doc.name, err)
	}
	if err := os.WriteFile(doc.name, encoded, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", doc.name, err)
	}
	return nil
}

// printValue renders a value in the document's format
func (a *app) printValue(value any, format Format) error {
	encoded, err := Encode(value, format)
	if err != nil {
		return err
	}
	a.printer.Raw(encoded)
	return nil
}

// pathArg turns the PATH argument into a string or sequence-form path
func pathArg(raw string, segments bool) (any, error) {
	if !segments {
		return raw, nil
	}
	return ParseSegments(raw)
}

// longDesc trims the indentation of a multi-line help text
func longDesc(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
