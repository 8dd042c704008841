// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sdlshim.org/internal/drm"
	"sdlshim.org/internal/egl"
	"sdlshim.org/internal/gbm"
	"sdlshim.org/internal/probe"
)

func newEGLCmd() *cobra.Command {
	var library string
	cmd := &cobra.Command{
		Use:   "egl",
		Short: "Load EGL and initialize a display on the first DRM device",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if library == "" {
				library = cfg.EGL.Library
			}
			lib, err := egl.Load(library)
			if err != nil {
				return err
			}
			rep := probe.EGLReport{
				Library:  library,
				Missing:  probe.MissingSymbols(lib.Resolved()),
				Platform: "gbm",
			}
			if err := describeGBM(lib, cfg.DRM.Dir, &rep); err != nil {
				rep.Err = err.Error()
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer.EGL(rep))
			if rep.Err != "" {
				return errors.New("egl probe failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&library, "library", "", "Path of libEGL (default from config)")
	return cmd
}

// describeGBM initializes a display on a GBM device of the first card
// in dir and fills rep from it.
func describeGBM(lib *egl.Lib, dir string, rep *probe.EGLReport) error {
	card, err := drm.OpenFirst(dir)
	if err != nil {
		return err
	}
	defer card.Close()
	dev, err := gbm.NewDevice(card.Fd())
	if err != nil {
		return err
	}
	defer dev.Destroy()

	disp, err := lib.PlatformDisplay(egl.PlatformGBM, dev.Ptr())
	if err != nil {
		return err
	}
	if _, _, err := lib.Initialize(disp); err != nil {
		return err
	}
	defer lib.Terminate(disp)
	if rep.Vendor, rep.Version, rep.APIs, err = lib.Describe(disp); err != nil {
		return err
	}
	rep.Extensions, err = lib.Extensions(disp)
	if err != nil {
		return fmt.Errorf("extensions: %w", err)
	}
	rep.APIs = strings.TrimSpace(rep.APIs)
	return nil
}
