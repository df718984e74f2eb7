package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cybergodev/nested"
)

type setFlags struct {
	create   bool
	asString bool
	inPlace  bool
	diff     bool
	segments bool
}

func newSetCmd(a *app) *cobra.Command {
	var f setFlags
	cmd := &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Write VALUE at PATH and print the updated document",
		Long: longDesc(`
			Write VALUE at PATH. VALUE is parsed as a YAML literal (42, true, [1, 2], {a: b})
			unless --string is given.

			Sequences grow only by writing at their current length. With --create, missing
			intermediate containers are created: a sequence when the next segment is an index,
			a mapping otherwise.
		`),
		Example: `  nested set config.yaml server.port 8080 --in-place
  nested set doc.json users.0.tags.0 admin --create --diff`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSet(a, args[0], args[1], args[2], f)
		},
	}
	cmd.Flags().BoolVarP(&f.create, "create", "c", false, "Create missing intermediate containers")
	cmd.Flags().BoolVarP(&f.asString, "string", "s", false, "Treat VALUE as a plain string")
	cmd.Flags().BoolVarP(&f.inPlace, "in-place", "i", false, "Write the result back to FILE")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "Print a diff instead of the document")
	cmd.Flags().BoolVar(&f.segments, "segments", false, "PATH is a YAML flow sequence of keys and indices")
	return cmd
}

func runSet(a *app, file, rawPath, rawValue string, f setFlags) error {
	doc, err := a.load(file)
	if err != nil {
		return err
	}
	path, err := pathArg(rawPath, f.segments)
	if err != nil {
		return err
	}

	var value any = rawValue
	if !f.asString {
		if value, err = ParseValue(rawValue); err != nil {
			return err
		}
	}

	before, err := a.snapshot(doc, f.diff)
	if err != nil {
		return err
	}
	if err := a.processor.Set(&doc.root, path, value, &nested.Options{CreatePaths: f.create}); err != nil {
		return fmt.Errorf("%s: %w", doc.name, err)
	}
	return a.finish(doc, before, f.inPlace, f.diff)
}

// snapshot renders the document before a mutation when a diff is requested
func (a *app) snapshot(doc *document, wanted bool) (string, error) {
	if !wanted {
		return "", nil
	}
	encoded, err := Encode(doc.root, doc.format)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// finish saves and reports a mutated document
func (a *app) finish(doc *document, before string, inPlace, diff bool) error {
	if inPlace {
		if err := a.save(doc); err != nil {
			return err
		}
	}
	switch {
	case diff:
		after, err := Encode(doc.root, doc.format)
		if err != nil {
			return err
		}
		a.printer.Diff(before, string(after))
		return nil
	case inPlace:
		return nil
	default:
		return a.printValue(doc.root, doc.format)
	}
}
