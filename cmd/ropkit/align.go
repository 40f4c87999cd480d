package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/ropkit/internal/config"
	"github.com/ib-77/ropkit/pkg/text"
)

var alignCmd = &cobra.Command{
	Use:   "align [text...]",
	Short: "Pad each argument to the configured width",
	RunE: func(cmd *cobra.Command, args []string) error {
		alignment := config.GetAlignment()
		if unexpected, failed := alignment.TryGetError(); failed {
			return fmt.Errorf("invalid alignment: %w", unexpected)
		}

		for _, line := range alignLines(args, config.GetAlignWidth(), alignment.Value(), config.GetAlignPad()) {
			cmd.Println(line)
		}
		return nil
	},
}

func init() {
	alignCmd.Flags().Int("width", 20, "target display width")
	alignCmd.Flags().String("alignment", "left", fmt.Sprintf("one of %v", text.Alignments()))
	alignCmd.Flags().String("pad", " ", "padding character")

	_ = viper.BindPFlag(config.AlignWidth, alignCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag(config.Alignment, alignCmd.Flags().Lookup("alignment"))
	_ = viper.BindPFlag(config.AlignPad, alignCmd.Flags().Lookup("pad"))
}

func alignLines(args []string, width int, alignment text.Alignment, pad rune) []string {
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		lines = append(lines, "|"+text.Align(arg, width, alignment, pad)+"|")
	}
	return lines
}
