// SPDX-License-Identifier: Unlicense OR MIT

package probe

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the report styles.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Box     lipgloss.Style
}

func DefaultTheme() *Theme {
	accent := lipgloss.Color("#7aa2f7")
	muted := lipgloss.Color("#565f89")
	return &Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:   lipgloss.NewStyle().Foreground(muted).Width(12),
		Value:   lipgloss.NewStyle(),
		Subtle:  lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}

// Renderer formats reports for a terminal.
type Renderer struct {
	theme *Theme
}

func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

func (r *Renderer) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.theme.Label.Render(label), r.theme.Value.Render(value))
}

func (r *Renderer) status(ok bool, text string) string {
	if ok {
		return r.theme.Success.Render(text)
	}
	return r.theme.Failure.Render(text)
}

func (r *Renderer) section(title string, lines []string) string {
	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.Title.Render(title) + "\n" + body)
}

func (r *Renderer) Session(rep SessionReport) string {
	session := rep.Session
	if !rep.Set {
		session = r.theme.Subtle.Render("(unset)")
	}
	drivers := strings.Join(rep.Drivers, ", ")
	if drivers == "" {
		drivers = r.theme.Subtle.Render("none")
	}
	lines := []string{
		r.row("session", session),
		r.row("drivers", drivers),
	}
	if rep.Err != "" {
		lines = append(lines, r.row("backend", r.status(false, rep.Err)))
	} else {
		text := rep.Backend
		if !rep.OK() {
			text += " (not built in)"
		}
		lines = append(lines, r.row("backend", r.status(rep.OK(), text)))
	}
	return r.section("Session", lines)
}

func (r *Renderer) Cards(reps []CardReport) string {
	sections := make([]string, 0, len(reps))
	for _, c := range reps {
		sections = append(sections, r.card(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) card(c CardReport) string {
	if c.Err != "" {
		return r.section(c.Path, []string{r.status(false, c.Err)})
	}
	lines := []string{
		r.row("crtcs", fmt.Sprint(c.Crtcs)),
		r.row("planes", fmt.Sprint(len(c.Planes))),
	}
	for _, p := range c.Planes {
		desc := fmt.Sprintf("%d: crtcs %v, %d formats", p.ID, p.Crtcs, p.Formats)
		if p.Err != "" {
			desc = r.status(false, fmt.Sprintf("%d: %s", p.ID, p.Err))
		}
		lines = append(lines, r.row("", desc))
	}
	for _, conn := range c.Connectors {
		name := conn.Name
		if name == "" {
			name = fmt.Sprintf("connector %d", conn.ID)
		}
		state := r.status(conn.Connection == "connected", conn.Connection)
		lines = append(lines, r.row(name, state))
		for i, m := range conn.Modes {
			if i == 0 {
				m += " " + r.theme.Subtle.Render("preferred")
			}
			lines = append(lines, r.row("", m))
		}
	}
	return r.section(c.Path, lines)
}

func (r *Renderer) EGL(rep EGLReport) string {
	lib := rep.Library
	if lib == "" {
		lib = r.theme.Subtle.Render("system")
	}
	lines := []string{r.row("library", lib)}
	if len(rep.Missing) > 0 {
		lines = append(lines, r.row("missing", r.theme.Subtle.Render(strings.Join(rep.Missing, ", "))))
	}
	if rep.Platform != "" {
		lines = append(lines, r.row("platform", rep.Platform))
	}
	if rep.Err != "" {
		lines = append(lines, r.row("display", r.status(false, rep.Err)))
		return r.section("EGL", lines)
	}
	lines = append(lines,
		r.row("vendor", rep.Vendor),
		r.row("version", rep.Version),
		r.row("apis", rep.APIs),
		r.row("extensions", fmt.Sprint(len(rep.Extensions))),
	)
	return r.section("EGL", lines)
}
