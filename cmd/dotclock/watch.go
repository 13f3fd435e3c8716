// seehuhn.de/go/dotclock - a dot-matrix watchface renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli"

	"seehuhn.de/go/dotclock/face"
	"seehuhn.de/go/dotclock/internal/termview"
	"seehuhn.de/go/dotclock/settings"
	"seehuhn.de/go/dotclock/weather"
)

var watchCommand = cli.Command{
	Name:   "watch",
	Usage:  "run the face in the terminal",
	Action: watchAction,
}

type tickMsg time.Time

type stepsMsg struct {
	steps int
	err   error
}

type weatherMsg struct {
	report weather.Report
	err    error
}

type reloadMsg struct{}

type model struct {
	env    *env
	ctx    context.Context
	out    *lipgloss.Renderer
	styles termview.Styles

	cfg settings.Settings
	st  face.State
	now time.Time

	frame string

	// errors by source; each is cleared only by its own source
	loadErr    error
	stepsErr   error
	weatherErr error
}

func newModel(ctx context.Context, e *env, out *lipgloss.Renderer) model {
	m := model{
		env:    e,
		ctx:    ctx,
		out:    out,
		styles: termview.NewStyles(out),
		cfg:    settings.Defaults(),
		st:  face.State{Weather: weather.Report{Condition: weather.Loading}},
		now: time.Now(),
	}
	m.reload()
	m.redraw()
	return m
}

// untilNextMinute returns the time from now to the start of the next
// minute.
func untilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}

func doTick(now time.Time) tea.Cmd {
	return tea.Tick(untilNextMinute(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) pollSteps(delay time.Duration) tea.Cmd {
	read := func() tea.Msg {
		n, err := m.env.readSteps()
		return stepsMsg{steps: n, err: err}
	}
	if delay == 0 {
		return read
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return read() })
}

func (m model) fetchWeather(delay time.Duration) tea.Cmd {
	fetch := func() tea.Msg {
		r, err := m.env.refreshWeather(m.ctx)
		return weatherMsg{report: r, err: err}
	}
	if delay == 0 {
		return fetch
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return fetch() })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		doTick(m.now),
		m.pollSteps(0),
		m.fetchWeather(0),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.reload()
			m.redraw()
		}
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.redraw()
		return m, doTick(m.now)

	case stepsMsg:
		m.stepsErr = msg.err
		if msg.err == nil && msg.steps != m.st.Steps {
			m.st.Steps = msg.steps
			m.redraw()
		}
		return m, m.pollSteps(stepPollInterval)

	case weatherMsg:
		m.weatherErr = msg.err
		m.st.Weather = msg.report
		m.redraw()
		return m, m.fetchWeather(weather.RefreshInterval)

	case reloadMsg:
		m.reload()
		m.redraw()
		return m, nil
	}

	return m, nil
}

// reload reads the settings from the store.  The weather shown is the
// last report fetched by this process, or the stored one.
func (m *model) reload() {
	cfg, w, err := m.env.load()
	m.loadErr = err
	if err != nil {
		return
	}
	m.cfg = cfg
	m.st.Weather = m.env.lastWeather(w)
}

func (m *model) redraw() {
	img := face.Render(m.now, m.cfg, m.st, 1)
	m.frame = termview.Render(m.out, img)
}

// err returns the current errors of all sources, or nil.
func (m model) err() error {
	return errors.Join(m.loadErr, m.stepsErr, m.weatherErr)
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.frame)
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(statusLine(m.cfg)))
	if err := m.err(); err != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(err.Error()))
	}
	sb.WriteString("\n")
	return sb.String()
}

func statusLine(cfg settings.Settings) string {
	mode := "24h"
	if !cfg.Use24H {
		mode = "12h"
	}
	return fmt.Sprintf("%s  top:%s  bottom:%s  bonus:%d  [r]eload [q]uit",
		mode, cfg.Top, cfg.Bottom, cfg.Bonus)
}

func listenSIGHUP(p *tea.Program) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP)
	for range sig {
		p.Send(reloadMsg{})
	}
}

func watchAction(c *cli.Context) error {
	e, err := newEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := lipgloss.NewRenderer(os.Stdout)
	p := tea.NewProgram(newModel(ctx, e, out), tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	go listenSIGHUP(p)

	_, err = p.Run()
	return err
}
