package cmd

import (
	"fmt"
	"os"

	"vid2aud/domain/audio"
	"vid2aud/infrastructure/terminal"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported audio formats and their encoders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunFormats(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

// RunFormats prints the format table
func RunFormats(out OutputWriter) error {
	rows := make([][]string, 0, len(audio.Formats()))
	for _, f := range audio.Formats() {
		rows = append(rows, []string{f.String(), f.Encoder(), "." + f.Extension()})
	}
	_, err := fmt.Fprintln(out, terminal.RenderTable([]string{"Format", "Encoder", "Output"}, rows))
	return err
}
