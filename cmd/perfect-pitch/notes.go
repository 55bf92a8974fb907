package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/spf13/cobra"
)

func newNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "Prints the playable notes",
		Long:  `Prints every playable note with its key, frequency and MIDI key number.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printNotes(cmd.OutOrStdout())
		},
	}
}

// printNotes writes the note table
func printNotes(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEGREE\tKEY\tNOTE\tFREQUENCY\tMIDI")
	for i, n := range core.AllNotes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s Hz\t%d\n",
			humanize.Ordinal(i+1), strings.ToLower(n.String()), n, humanize.FtoaWithDigits(n.Frequency(), 1), n.MIDIKey())
	}
	tw.Flush()
}
