package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cutdrill/pkg/profile"
	"cutdrill/pkg/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <profiles.json>",
	Short: "Validate a profiles hand-off file without generating a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read profiles: %w", err)
		}
		if err := schemas.ValidateProfiles(data); err != nil {
			return err
		}
		specs, err := profile.Decode(bytes.NewReader(data))
		if err != nil {
			return err
		}
		holes := 0
		for _, sp := range specs {
			for _, sec := range sp.Sections {
				holes += len(sec.Holes)
			}
		}
		logger.Info("%s: %d profiles, %d holes, OK", args[0], len(specs), holes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
