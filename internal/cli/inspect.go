package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deckgrip/internal/deck"
	"deckgrip/internal/discovery"
	"deckgrip/internal/storage"
	"deckgrip/internal/ui"
)

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	d, err := deck.Load(args[0])
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(args[0]), err)
	}
	fmt.Fprint(cmd.OutOrStdout(), d.Outline(nil))
	return nil
}

func newNotesCmd(a *app) *cobra.Command {
	var pager bool
	cmd := &cobra.Command{
		Use:   "notes <deck.md>",
		Short: "Print the outline with stored speaker notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}

			kv, err := a.openKV()
			if err != nil {
				return err
			}
			defer kv.Close()

			snap, _, err := storage.NewSnapshotStore(kv).Load()
			if err != nil {
				return err
			}
			stored := func(id string) string { return snap.Notes[id].Content }

			outline := d.Outline(stored)
			if pager {
				return ui.Page(outline)
			}
			fmt.Fprint(cmd.OutOrStdout(), outline)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&pager, "pager", "p", false, "Open the notes in a pager")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	if err := a.setup(); err != nil {
		return err
	}
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	found, err := discovery.NewScanner(a.logger).Scan(cmd.Context(), roots)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no decks found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, f := range found {
		fmt.Fprintf(w, "%s\t%s\t%d slides\n", f.Path, f.Title, f.Slides)
	}
	return w.Flush()
}
