package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newDepthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "depth FILE",
		Short: "Print the maximum nesting depth of the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.printer.Line("%d", a.processor.Depth(doc.root))
			return nil
		},
	}
}

func newLeavesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leaves FILE",
		Short: "Print the number of leaf values in the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.printer.Line("%d", a.processor.CountLeaves(doc.root))
			return nil
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	var segments bool
	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "Print the path of every leaf, one per line",
		Long: longDesc(`
			Print the path of every leaf in document order. With --segments each path is
			printed as a flow sequence that can be passed back with --segments, which keeps
			keys containing '.' intact.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			for _, p := range a.processor.AllPaths(doc.root) {
				if !segments {
					a.printer.Line("%s", p)
					continue
				}
				encoded, err := json.Marshal(p.Values())
				if err != nil {
					return fmt.Errorf("encode path %s: %w", p, err)
				}
				a.printer.Line("%s", encoded)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&segments, "segments", false, "Print paths as flow sequences")
	return cmd
}
