/*
File    : l/cmd/l/cmd/fmt.go
Author  : adapted from go-mix by Akash Maji
*/

package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const styleProfilePath = ".l-style.yaml"

// styleProfile holds the formatter's configurable knobs. fmt itself is
// not yet implemented, but the profile it will consult is: an optional
// .l-style.yaml in the working directory is read at startup and falls
// back to these defaults when absent or partially specified.
type styleProfile struct {
	IndentWidth int    `yaml:"indent_width"`
	BraceStyle  string `yaml:"brace_style"`
}

func defaultStyleProfile() styleProfile {
	return styleProfile{IndentWidth: 4, BraceStyle: "same-line"}
}

// loadStyleProfile reads styleProfilePath if present, overlaying any
// fields it sets onto the defaults. A missing file is not an error.
func loadStyleProfile(path string) (styleProfile, error) {
	profile := defaultStyleProfile()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return profile, nil
	}
	if err != nil {
		return profile, err
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, err
	}
	return profile, nil
}

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Format a source file (reserved)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadStyleProfile(styleProfilePath)
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", styleProfilePath, err)
			os.Exit(1)
		}
		color.New(color.FgCyan).Printf(
			"fmt: coming soon (style profile: indent=%d, braces=%s)\n",
			profile.IndentWidth, profile.BraceStyle,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
