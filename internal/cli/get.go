package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type getFlags struct {
	def      string
	segments bool
}

func newGetCmd(a *app) *cobra.Command {
	var f getFlags
	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at PATH",
		Example: `  nested get config.yaml server.port
  nested get config.yaml users.-1.name --default unknown
  cat doc.json | nested get - items.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(a, args[0], args[1], f, cmd.Flags().Changed("default"))
		},
	}
	cmd.Flags().StringVar(&f.def, "default", "", "Value (YAML literal) printed when PATH does not resolve")
	cmd.Flags().BoolVar(&f.segments, "segments", false, "PATH is a YAML flow sequence of keys and indices")
	return cmd
}

func runGet(a *app, file, rawPath string, f getFlags, hasDefault bool) error {
	doc, err := a.load(file)
	if err != nil {
		return err
	}
	path, err := pathArg(rawPath, f.segments)
	if err != nil {
		return err
	}

	var value any
	if hasDefault {
		def, err := ParseValue(f.def)
		if err != nil {
			return err
		}
		value, err = a.processor.GetOr(doc.root, path, def)
		if err != nil {
			return err
		}
	} else {
		value, err = a.processor.Get(doc.root, path)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.name, err)
		}
	}
	return a.printValue(value, doc.format)
}

func newExistsCmd(a *app) *cobra.Command {
	var segments bool
	cmd := &cobra.Command{
		Use:   "exists FILE PATH",
		Short: "Print true if PATH resolves, false otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			path, err := pathArg(args[1], segments)
			if err != nil {
				return err
			}
			ok, err := a.processor.Exists(doc.root, path)
			if err != nil {
				return err
			}
			a.printer.Line("%t", ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&segments, "segments", false, "PATH is a YAML flow sequence of keys and indices")
	return cmd
}
