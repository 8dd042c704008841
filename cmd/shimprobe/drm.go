// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdlshim.org/internal/drm"
	"sdlshim.org/internal/probe"
)

func newDRMCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "drm",
		Short: "List DRM devices, connectors and modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				dir = cfg.DRM.Dir
			}
			reps, err := probe.Cards(dir, func(path string) (probe.Card, error) {
				c, err := drm.Open(path)
				if err != nil {
					return nil, err
				}
				return c, nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Cards(reps))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Device directory (default from config)")
	return cmd
}
