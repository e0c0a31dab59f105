package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smallnest/studymap/roadmap"
)

func (a *app) encodeCommand() *cobra.Command {
	var format, direction string

	cmd := &cobra.Command{
		Use:   "encode <tree.json>",
		Short: "Render a saved roadmap as Mermaid, DOT or ASCII",
		Long:  "Render a saved roadmap as Mermaid, DOT or ASCII. Use - to read the roadmap from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := roadmap.Direction(direction)
			if dir != roadmap.LeftRight && dir != roadmap.TopDown {
				return fmt.Errorf("unknown direction %q (want LR or TD)", direction)
			}

			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read roadmap: %w", err)
			}

			tree, err := roadmap.Parse(string(data))
			if err != nil {
				return err
			}

			enc := roadmap.NewEncoder(roadmap.Options{Direction: dir})
			var out string
			switch format {
			case "mermaid":
				out = enc.Mermaid(tree)
			case "dot":
				out = enc.DOT(tree)
			case "ascii":
				out = enc.ASCII(tree)
			default:
				return fmt.Errorf("unknown format %q (want mermaid, dot or ascii)", format)
			}

			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "mermaid", "output format: mermaid, dot or ascii")
	cmd.Flags().StringVar(&direction, "direction", string(roadmap.LeftRight), "diagram direction: LR or TD")
	return cmd
}
