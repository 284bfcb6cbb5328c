// ABOUTME: Bubble Tea front end rendering the search state in a terminal
// ABOUTME: Submits keywords through the session controller and redraws on every state change

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"telescout-api/core/domain"
	"telescout-api/pkg/locale"
)

// cardTags is the number of tags shown per group
const cardTags = 3

// Controller is the part of the session controller the model uses
type Controller interface {
	SubmitAsync(ctx context.Context, keyword string) <-chan domain.SearchState
	Snapshot() domain.SearchState
}

// StateMsg carries a state snapshot published by the controller
type StateMsg struct {
	State domain.SearchState
}

// Model is the Bubble Tea model of the terminal front end
type Model struct {
	ctx        context.Context
	controller Controller
	text       locale.PageText
	styles     *Styles

	input   textinput.Model
	spinner spinner.Model
	state   domain.SearchState

	width    int
	quitting bool
}

// NewModel creates a new terminal model
func NewModel(ctx context.Context, controller Controller, text locale.PageText) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = text.InputPlaceholder
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Loading

	return Model{
		ctx:        ctx,
		controller: controller,
		text:       text,
		styles:     styles,
		input:      ti,
		spinner:    s,
		state:      controller.Snapshot(),
	}
}

// State returns the state the model last rendered
func (m Model) State() domain.SearchState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case StateMsg:
		return m.setState(msg.State)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
		if m.state.Loading {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state.Loading || strings.TrimSpace(m.input.Value()) == "" {
		return m, nil
	}

	m.controller.SubmitAsync(m.ctx, m.input.Value())
	return m.setState(m.controller.Snapshot())
}

func (m Model) setState(s domain.SearchState) (tea.Model, tea.Cmd) {
	wasLoading := m.state.Loading
	m.state = s

	if s.Loading {
		m.input.Blur()
		if !wasLoading {
			return m, m.spinner.Tick
		}
		return m, nil
	}
	return m, m.input.Focus()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	view := m.state.View()

	b.WriteString(m.styles.Badge.Render(m.text.Badge))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(m.text.Headline))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render(m.text.Tagline))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.state.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.styles.Loading.Render(m.text.Searching + "..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if view.ShowError {
		b.WriteString(m.styles.Error.Render(m.state.Error))
		b.WriteString("\n\n")
	}

	if view.ShowResults {
		b.WriteString(m.styles.Title.Render(m.text.ResultsHeadingFor(m.state.Query)))
		b.WriteString("  ")
		b.WriteString(m.styles.Dim.Render(m.text.ResultsCountFor(len(m.state.Results))))
		b.WriteString("\n")
		for _, g := range m.state.Results {
			b.WriteString(m.renderGroup(g))
			b.WriteString("\n")
		}
	}

	if view.ShowNoResults {
		b.WriteString(m.text.NoResultsFor(m.state.Query))
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render(m.text.NoResultsHint))
		b.WriteString("\n\n")
	}

	if view.ShowSources {
		b.WriteString(m.styles.Name.Render(m.text.SourcesHeading))
		b.WriteString("\n")
		for _, src := range m.state.Sources {
			b.WriteString("  ")
			b.WriteString(m.styles.Source.Render(src.Label()))
			b.WriteString(" ")
			b.WriteString(m.styles.Dim.Render(src.URI))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if view.ShowIntro {
		for _, f := range m.text.Features {
			b.WriteString(m.styles.Name.Render(f.Title))
			b.WriteString("  ")
			b.WriteString(m.styles.Dim.Render(f.Text))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Dim.Render(m.text.KeyHelp))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderGroup(g domain.CommunityGroup) string {
	var b strings.Builder

	b.WriteString(m.styles.Initial.Render(g.Initial()))
	b.WriteString(" ")
	b.WriteString(m.styles.Name.Render(g.Name))
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf("  %s · %s %s", g.Category, g.EstimatedMembers, m.text.Members)))
	b.WriteString("\n")
	b.WriteString(g.Description)
	b.WriteString("\n")

	if tags := g.TopTags(cardTags); len(tags) > 0 {
		rendered := make([]string, 0, len(tags))
		for _, t := range tags {
			rendered = append(rendered, "#"+t)
		}
		b.WriteString(m.styles.Tag.Render(strings.Join(rendered, " ")))
		b.WriteString("\n")
	}

	url := g.JoinURL(m.text.JoinSearchSuffix)
	if g.IsDirectLink() {
		b.WriteString(m.styles.Direct.Render(m.text.Join + ": " + url))
		b.WriteString(" ")
		b.WriteString(m.styles.Dim.Render("✓ " + m.text.VerifiedLink))
	} else {
		b.WriteString(m.styles.Search.Render(m.text.SearchGoogle + ": " + url))
	}

	card := m.styles.Card
	if m.width > 4 {
		card = card.Width(m.width - 4)
	}
	return card.Render(b.String())
}
