package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smallnest/studymap/notes"
)

func (a *app) notesCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "notes <topic>",
		Short: "Generate PDF study notes for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.TrimSpace(strings.Join(args, " "))
			if out == "" {
				out = a.cfg.Notes.Dir
			}

			gen, release, err := a.generator(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			text, err := gen.GenerateNotes(cmd.Context(), topic)
			if err != nil {
				return err
			}

			path, err := notes.Parse(topic, text, time.Now()).Save(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from config)")
	return cmd
}
