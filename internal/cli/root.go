package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/smallnest/studymap/config"
	"github.com/smallnest/studymap/log"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger log.Logger
	deps   deps
}

// NewRootCommand builds the studymap command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDeps())
}

func newRootCommand(d deps) *cobra.Command {
	a := &app{deps: d}

	root := &cobra.Command{
		Use:           "studymap",
		Short:         "AI study planner for JEE topics",
		Long:          "studymap generates a structured roadmap for a JEE topic, finds a video and articles for any sub-topic, and writes PDF study notes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error or none")

	root.AddCommand(
		a.serveCommand(),
		a.tuiCommand(),
		a.encodeCommand(),
		a.notesCommand(),
	)
	return root
}

// load reads the configuration and sets up the logger.
func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWriterGologLogger(stderr, level)
	log.SetDefault(a.logger)
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
