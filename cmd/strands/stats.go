package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/strands/trigram"
)

func newStatsCmd(c *cli) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the most frequent trigrams of the word files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _ := c.corpus()
			return writeStats(cmd.OutOrStdout(), m, top)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 20, "number of trigrams to list; 0 lists all")
	return cmd
}

func writeStats(w io.Writer, m *trigram.Model, top int) error {
	_, err := fmt.Fprintf(w, "total %d\ndistinct %d\nmax %d (%.6f)\n",
		m.Total(), m.Len(), m.Max(), m.MaxFrequency())
	if err != nil {
		return err
	}
	if m.Empty() {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TRIGRAM", "COUNT", "FREQUENCY")
	for _, e := range m.Top(top) {
		t.Row(e.Key.String(),
			strconv.FormatUint(e.Count, 10),
			strconv.FormatFloat(m.FrequencyOf(e.Key), 'f', 6, 64))
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}
