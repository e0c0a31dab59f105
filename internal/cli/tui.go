package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/smallnest/studymap/log"
	"github.com/smallnest/studymap/tui"
)

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen belongs to bubbletea; logs go to a file or nowhere.
			out := io.Discard
			if a.cfg.Log.File != "" {
				f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				out = f
			}
			level, err := log.ParseLevel(a.cfg.Log.Level)
			if err != nil {
				return err
			}
			quiet := a.withLogger(log.NewWriterGologLogger(out, level))

			ctx := cmd.Context()
			gen, release, err := quiet.generator(ctx)
			if err != nil {
				return err
			}
			defer release()

			m := tui.New(ctx, tui.Config{
				Generator: gen,
				Finder:    quiet.finder(ctx),
				NotesDir:  a.cfg.Notes.Dir,
				Logger:    quiet.logger,
			})

			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}
