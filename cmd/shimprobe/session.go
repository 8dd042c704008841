// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdlshim.org/internal/probe"
)

func newSessionCmd() *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show the backend selected for the session",
		Long:  "Show the session type, the backends built in and the backend a program would get.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("session") {
				cfg.Session = session
			}
			rep := probe.Session(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Session(rep))
			if !rep.OK() {
				return fmt.Errorf("no window for session %q", cfg.Session)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "Session type to evaluate instead of XDG_SESSION_TYPE")
	return cmd
}
