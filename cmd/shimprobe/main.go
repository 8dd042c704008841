// SPDX-License-Identifier: Unlicense OR MIT

// Command shimprobe reports how the shim would run on this machine:
// the backend selected for the session, the display outputs of the
// DRM devices and the EGL implementation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "sdlshim.org/app/driver"
	"sdlshim.org/internal/config"
	"sdlshim.org/internal/probe"
)

var renderer = probe.NewRenderer(probe.DefaultTheme())

var rootCmd = &cobra.Command{
	Use:          "shimprobe",
	Short:        "Diagnose the SDL 1.2 shim environment",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newDRMCmd())
	rootCmd.AddCommand(newEGLCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
