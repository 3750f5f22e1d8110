package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"cutdrill/pkg/config"
	"cutdrill/pkg/log"
	"cutdrill/pkg/machine"
	"cutdrill/pkg/profile"
	"cutdrill/pkg/schemas"
	"cutdrill/pkg/toolpath"
)

var (
	genProfilesPath string
	genMachinePath  string
	genOutPath      string
	genTap          bool
	genDebug        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a drilling program from a profiles JSON file",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genProfilesPath, "profiles", "", "profiles JSON file from the profile builder (required)")
	generateCmd.Flags().StringVar(&genMachinePath, "machine", os.Getenv("CUTDRILL_MACHINE"), "machine settings file (INI); defaults to $CUTDRILL_MACHINE")
	generateCmd.Flags().StringVar(&genOutPath, "out", "", "output program file; default program.nc or program.tap")
	generateCmd.Flags().BoolVar(&genTap, "tap", false, "emit the compact .tap dialect")
	generateCmd.Flags().BoolVar(&genDebug, "debug", false, "dump decoded profiles before generating")
	_ = generateCmd.MarkFlagRequired("profiles")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	specs, err := loadProfiles(genProfilesPath)
	if err != nil {
		return err
	}

	settings, err := loadSettings(genMachinePath)
	if err != nil {
		return err
	}
	if genTap {
		settings.TapMode = true
	}

	if genDebug {
		logger.Debug("decoded profiles:\n%s", spew.Sdump(specs))
	}
	logger.WithFields(log.INFO, "generating program", log.Fields{
		"profiles": len(specs),
		"settings": settings.Describe(),
	})

	program := toolpath.Generate(specs, settings)

	out := genOutPath
	if out == "" {
		if settings.TapMode {
			out = "program.tap"
		} else {
			out = "program.nc"
		}
	}
	if err := os.WriteFile(out, []byte(program), 0o644); err != nil {
		return fmt.Errorf("write program: %w", err)
	}

	logger.WithFields(log.INFO, "program written", log.Fields{
		"file":  out,
		"lines": strings.Count(program, "\n"),
	})
	return nil
}

// loadProfiles validates the hand-off file against the profiles schema and
// decodes it. Schema or decode failures are caller-contract errors and
// abort; per-value problems inside a valid document are degraded locally by
// the decoder and the assembler.
func loadProfiles(path string) ([]profile.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	if err := schemas.ValidateProfiles(data); err != nil {
		return nil, err
	}
	specs, err := profile.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		logger.Warn("no profiles in %s; emitting a header/footer-only program", path)
	}
	return specs, nil
}

// loadSettings builds machine settings from defaults, layered with the
// optional INI settings file.
func loadSettings(path string) (machine.Settings, error) {
	if path == "" {
		return machine.Defaults(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return machine.Settings{}, err
	}
	settings, err := machine.FromConfig(cfg)
	if err != nil {
		return machine.Settings{}, err
	}
	for _, opt := range cfg.UnusedOptions() {
		logger.Warn("unknown settings option %s", opt)
	}
	return settings, nil
}
