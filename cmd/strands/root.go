package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/strands/internal/app"
	"github.com/iw2rmb/strands/internal/config"
	"github.com/iw2rmb/strands/internal/logging"
	"github.com/iw2rmb/strands/trigram"
)

// cli is the state shared by the root command and its subcommands.
type cli struct {
	v          *viper.Viper
	configPath string
	textPath   string

	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "strands",
		Short: "Draw letter co-occurrence arrows over editable text",
		Long: `strands loads word lists, counts every three-letter sequence in them and
shows the text you type with an arrow between neighbouring letters whose
sequence is frequent enough. The slider sets how frequent is enough.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if c.closer != nil {
				return c.closer.Close()
			}
			return nil
		},
		RunE: c.runSession,
	}

	pf := root.PersistentFlags()
	pf.StringArrayP("word-file", "w", nil, "corpus file to ingest (repeatable)")
	pf.String("encoding", config.Defaults().Encoding, "character encoding of corpus files")
	pf.Float64("value", config.Defaults().Value, "permissiveness in [0, 1]")
	pf.StringVar(&c.configPath, "config", "", "config file (default strands.yaml)")
	pf.String("log-file", "", "append logs to this file")
	pf.String("log-level", config.Defaults().Log.Level, "debug, info, warn or error")
	root.Flags().StringVar(&c.textPath, "text", "", "initial contents of the editor")

	for key, name := range map[string]string{
		"word_files": "word-file",
		"encoding":   "encoding",
		"value":      "value",
		"log.file":   "log-file",
		"log.level":  "log-level",
	} {
		_ = c.v.BindPFlag(key, pf.Lookup(name))
	}

	root.AddCommand(
		newRenderCmd(c),
		newStatsCmd(c),
		newConfigCmd(c),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger. The interactive
// session owns the terminal, so it only logs when a log file is set;
// subcommands log to stderr.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.v, c.configPath)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	opt := logging.Options{Level: level, File: cfg.Log.File}
	if cmd.Parent() != nil {
		opt.Writer = cmd.ErrOrStderr()
	}
	log, closer, err := logging.New(opt)
	if err != nil {
		return err
	}
	c.cfg, c.log, c.closer = cfg, log, closer
	return nil
}

// corpus ingests the configured word files into a fresh model. A file that
// fails to load is logged and skipped; its Result carries the error.
func (c *cli) corpus() (*trigram.Model, []trigram.Result) {
	m := trigram.New()
	loader := trigram.Loader{Model: m, Encoding: c.cfg.Encoding, Logger: c.log}
	return m, loader.LoadAll(c.cfg.WordFiles)
}

// reportFailures writes one line per failed load to w and returns how many
// failed.
func reportFailures(w io.Writer, results []trigram.Result) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			continue
		}
		n++
		fmt.Fprintln(w, "strands:", r.Err)
	}
	return n
}

// session loads the corpus and the initial text and builds the app model.
// Load failures go to stderr before the terminal is taken over, and to the
// status line once it is.
func (c *cli) session(cmd *cobra.Command) (app.Model, error) {
	var text string
	if c.textPath != "" {
		b, err := os.ReadFile(c.textPath)
		if err != nil {
			return app.Model{}, fmt.Errorf("read text: %w", err)
		}
		text = string(b)
	}

	m, results := c.corpus()
	reportFailures(cmd.ErrOrStderr(), results)
	return app.New(app.Options{
		Model:  m,
		Text:   text,
		Config: c.cfg,
		Logger: c.log,
		Loaded: results,
	}), nil
}

func (c *cli) runSession(cmd *cobra.Command, _ []string) error {
	m, err := c.session(cmd)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
