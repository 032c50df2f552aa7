package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/strands/frame"
	"github.com/iw2rmb/strands/grid"
	"github.com/iw2rmb/strands/render/raster"
	"github.com/iw2rmb/strands/render/term"
)

const (
	formatText = "text"
	formatPNG  = "png"
)

type renderFlags struct {
	out    string
	format string
	plain  bool
}

func newRenderCmd(c *cli) *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Plan a text file once and write the arrows as PNG or text",
		Long: `render reads text from file, or stdin when no file is given, plans it
against the loaded word files at the configured value and writes the
result. The format follows --format, or the extension of --out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd, args, rf)
		},
	}
	cmd.Flags().StringVarP(&rf.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&rf.format, "format", "", "png or text (default from --out)")
	cmd.Flags().BoolVar(&rf.plain, "plain", false, "text output without colour")
	return cmd
}

func (rf renderFlags) resolveFormat() (string, error) {
	f := strings.ToLower(rf.format)
	if f == "" {
		if strings.EqualFold(filepath.Ext(rf.out), ".png") {
			return formatPNG, nil
		}
		return formatText, nil
	}
	switch f {
	case formatText, formatPNG:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", rf.format)
}

func (c *cli) render(cmd *cobra.Command, args []string, rf renderFlags) error {
	format, err := rf.resolveFormat()
	if err != nil {
		return err
	}
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	m, _ := c.corpus()
	fr := frame.Plan(grid.SplitLines(text), m, m.Threshold(c.cfg.Value))
	c.log.Info("frame planned",
		"cells", len(fr.Cells),
		"arrows", fr.ArrowCount(),
		"threshold", fr.Threshold,
	)

	write := func(w io.Writer) error {
		if format == formatPNG {
			return raster.WritePNG(w, fr, c.cfg.FrameGeometry(), raster.Options{})
		}
		return writeText(w, fr, rf.plain || rf.out != "")
	}
	if rf.out == "" {
		return write(cmd.OutOrStdout())
	}
	return writeFile(rf.out, write)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return write(f)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	var (
		b   []byte
		err error
	)
	if len(args) == 1 && args[0] != "-" {
		b, err = os.ReadFile(args[0])
	} else {
		b, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// writeText renders with a renderer bound to w so that colour detection
// follows the destination rather than the process stdout.
func writeText(w io.Writer, fr frame.Frame, plain bool) error {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	if _, err := io.WriteString(w, term.Render(fr, term.Options{Renderer: r, Plain: plain})+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
