package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cybergodev/nested"
)

type deleteFlags struct {
	allowListMutation bool
	inPlace           bool
	diff              bool
	segments          bool
}

func newDeleteCmd(a *app) *cobra.Command {
	var f deleteFlags
	cmd := &cobra.Command{
		Use:   "delete FILE PATH",
		Short: "Remove the value at PATH",
		Long: longDesc(`
			Remove the value at PATH. Without --in-place the updated document is printed;
			with --in-place FILE is rewritten and the removed value is printed.

			Removing a sequence element shifts the elements after it and must be enabled
			with --allow-list-mutation.
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDelete(a, args[0], args[1], f)
		},
	}
	cmd.Flags().BoolVar(&f.allowListMutation, "allow-list-mutation", false, "Allow removing sequence elements")
	cmd.Flags().BoolVarP(&f.inPlace, "in-place", "i", false, "Write the result back to FILE")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "Print a diff instead of the document")
	cmd.Flags().BoolVar(&f.segments, "segments", false, "PATH is a YAML flow sequence of keys and indices")
	return cmd
}

func runDelete(a *app, file, rawPath string, f deleteFlags) error {
	doc, err := a.load(file)
	if err != nil {
		return err
	}
	path, err := pathArg(rawPath, f.segments)
	if err != nil {
		return err
	}

	before, err := a.snapshot(doc, f.diff)
	if err != nil {
		return err
	}
	removed, err := a.processor.Delete(&doc.root, path, &nested.Options{AllowListMutation: f.allowListMutation})
	if err != nil {
		return fmt.Errorf("%s: %w", doc.name, err)
	}

	if f.inPlace && !f.diff {
		if err := a.save(doc); err != nil {
			return err
		}
		return a.printValue(removed, doc.format)
	}
	return a.finish(doc, before, f.inPlace, f.diff)
}
