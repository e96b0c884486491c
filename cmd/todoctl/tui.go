package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todostarter/client"
	"todostarter/domain"
	"todostarter/query"
)

const (
	todosKey     = "todos"
	fetchTimeout = 30 * time.Second
)

// fetchedMsg delivers the outcome of a fetch (or add-then-refetch) to
// the update loop.
type fetchedMsg query.Result[domain.Todos]

type model struct {
	api   *client.Client
	cache *query.Cache[domain.Todos]
	res   query.Result[domain.Todos]

	spinner spinner.Model

	// Inline add
	adding bool
	input  textinput.Model
}

func newModel(api *client.Client, cache *query.Cache[domain.Todos]) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	ti := textinput.New()
	ti.Placeholder = "new todo name"
	ti.CharLimit = 120

	return model{
		api:     api,
		cache:   cache,
		res:     query.Pending[domain.Todos](),
		spinner: sp,
		input:   ti,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return fetchedMsg(m.cache.Fetch(ctx, todosKey, m.api.FetchTodos))
	}
}

func (m model) addCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if _, err := m.api.CreateTodo(ctx, name); err != nil {
			return fetchedMsg(query.Failure[domain.Todos](err))
		}

		m.cache.Invalidate(todosKey)
		return fetchedMsg(m.cache.Fetch(ctx, todosKey, m.api.FetchTodos))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		m.res = query.Result[domain.Todos](msg)
		return m, nil

	case spinner.TickMsg:
		if m.res.Status != query.StatusPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		switch msg.Type {
		case tea.KeyEnter:
			name := strings.TrimSpace(m.input.Value())
			m.adding = false
			m.input.Reset()
			if name == "" {
				return m, nil
			}
			m.res = query.Pending[domain.Todos]()
			return m, tea.Batch(m.spinner.Tick, m.addCmd(name))
		case tea.KeyEsc:
			m.adding = false
			m.input.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.cache.Invalidate(todosKey)
		m.res = query.Pending[domain.Todos]()
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m model) View() string {
	var body string

	switch m.res.Status {
	case query.StatusPending:
		body = fmt.Sprintf("%s Loading todos…", m.spinner.View())
	case query.StatusError:
		body = errorStyle.Render("Error: " + m.res.Err.Error())
	case query.StatusSuccess:
		if len(m.res.Data) == 0 {
			body = mutedStyle.Render("No todos yet.")
		} else {
			lines := make([]string, 0, len(m.res.Data))
			for _, t := range m.res.Data {
				lines = append(lines, fmt.Sprintf("%s %s", idStyle.Render(fmt.Sprintf("#%d", t.ID)), t.Name))
			}
			body = strings.Join(lines, "\n")
		}
	}

	out := titleStyle.Render("todos") + "\n" + panelStyle.Render(body) + "\n"

	if m.adding {
		out += m.input.View() + "\n"
	}
	out += helpStyle.Render("r refresh · a add · q quit")

	return out
}
