// Package tui renders a quest session in the terminal with bubbletea
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
)

type screen int

const (
	screenLoading screen = iota
	screenQuestion
	screenCourse
	screenEvent
	screenTransition
	screenEnded
	screenError
)

var courseChoices = []choice{
	{label: "ELICOS: English language course", value: string(quest.CourseTypeELICOS)},
	{label: "VET: Vocational education", value: string(quest.CourseTypeVET)},
	{label: "HE: Higher education", value: string(quest.CourseTypeHE)},
}

// Model is the bubbletea model of one quest session
type Model struct {
	ctx context.Context
	svc questsvc.Service

	screen       screen
	options      []quest.CharacterOption
	form         *questionnaire
	input        textinput.Model
	cursor       int
	notice       string
	session      *quest.Session
	card         *quest.CharacterCard
	lastEffect   string
	destinations []quest.Destination
	err          error
	width        int
}

type optionsLoadedMsg struct {
	options []quest.CharacterOption
}

type sessionMsg struct {
	session *quest.Session
	card    *quest.CharacterCard
	effect  string
}

type transitionsMsg struct {
	destinations []quest.Destination
}

type errMsg struct {
	err error
}

// New creates the model. The service is called from tea commands.
func New(ctx context.Context, svc questsvc.Service) Model {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Width = 40
	ti.Focus()

	return Model{
		ctx:    ctx,
		svc:    svc,
		screen: screenLoading,
		input:  ti,
	}
}

// Init loads the character option table
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadOptions())
}

// Update handles key presses and service results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case optionsLoadedMsg:
		m.options = msg.options
		m.startQuestionnaire()
		return m, nil

	case sessionMsg:
		return m.showSession(msg)

	case transitionsMsg:
		m.destinations = msg.destinations
		m.cursor = 0
		m.screen = screenTransition
		return m, nil

	case errMsg:
		m.err = msg.err
		m.screen = screenError
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) startQuestionnaire() {
	m.form = newQuestionnaire(m.options)
	m.notice = ""
	m.cursor = 0
	m.input.Reset()
	m.screen = screenQuestion
}

func (m Model) showSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	m.session = msg.session
	if msg.card != nil {
		m.card = msg.card
	}
	m.lastEffect = msg.effect
	m.cursor = 0
	m.err = nil

	switch m.session.Phase {
	case quest.PhaseCharacterCreation:
		m.startQuestionnaire()
		return m, nil
	case quest.PhaseCourseSelection:
		m.screen = screenCourse
		return m, nil
	case quest.PhaseEvent:
		m.screen = screenEvent
		return m, nil
	case quest.PhaseAwaitingEvent:
		m.screen = screenLoading
		return m, m.drawEvent()
	case quest.PhaseRouteTransition:
		m.screen = screenLoading
		return m, m.listTransitions()
	case quest.PhaseEnded:
		m.screen = screenEnded
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "esc" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenQuestion:
		return m.handleQuestionKey(msg)

	case screenCourse:
		if value, ok := m.pick(key, courseChoices); ok {
			m.screen = screenLoading
			return m, m.selectCourse(quest.CourseType(value))
		}

	case screenEvent:
		if m.session == nil || m.session.CurrentEvent == nil {
			return m, nil
		}
		options := m.session.CurrentEvent.Options
		choices := make([]choice, len(options))
		for i, opt := range options {
			choices[i] = choice{label: opt.Text, value: fmt.Sprint(i)}
		}
		if _, ok := m.pick(key, choices); ok {
			index := m.cursor
			m.screen = screenLoading
			return m, m.chooseOption(index)
		}

	case screenTransition:
		choices := make([]choice, len(m.destinations))
		for i, d := range m.destinations {
			choices[i] = choice{label: d.Label(), value: string(d)}
		}
		if value, ok := m.pick(key, choices); ok {
			m.screen = screenLoading
			return m, m.chooseTransition(quest.Destination(value))
		}

	case screenEnded:
		switch key {
		case "r":
			m.screen = screenLoading
			return m, m.reset()
		case "q":
			return m, tea.Quit
		}

	case screenError:
		switch key {
		case "r":
			if !m.canRetry() {
				return m, nil
			}
			if m.session == nil {
				m.startQuestionnaire()
				return m, nil
			}
			m.screen = screenLoading
			return m, m.refresh()
		case "n":
			if m.session == nil {
				m.startQuestionnaire()
				return m, nil
			}
			m.screen = screenLoading
			return m, m.reset()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// pick moves the cursor on up/down and reports a selection on enter or a
// digit key
func (m *Model) pick(key string, choices []choice) (string, bool) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(choices)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(choices) {
			return choices[m.cursor].value, true
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(choices) {
				m.cursor = idx
				return choices[idx].value, true
			}
		}
	}
	return "", false
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, ok := m.form.question()
	if !ok {
		return m, nil
	}

	if current.kind == kindText {
		if msg.Type != tea.KeyEnter {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m.answer(m.input.Value())
	}

	if value, picked := m.pick(msg.String(), current.choices); picked {
		return m.answer(value)
	}
	return m, nil
}

func (m Model) answer(value string) (tea.Model, tea.Cmd) {
	if err := m.form.answer(value); err != nil {
		m.notice = errors.GetMessage(err)
		return m, nil
	}

	m.notice = ""
	m.cursor = 0
	m.input.Reset()

	if m.form.done() {
		m.screen = screenLoading
		return m, m.initialize(m.form.result())
	}
	return m, nil
}

// View renders the current screen
func (m Model) View() string {
	var body string

	switch m.screen {
	case screenLoading:
		body = "\n  Loading...\n"

	case screenQuestion:
		body = m.viewQuestion()

	case screenCourse:
		body = titleStyle.Render("Choose your course") + "\n\n" + m.viewChoices(courseChoices)

	case screenEvent:
		body = m.withStats(m.viewEvent())

	case screenTransition:
		choices := make([]choice, len(m.destinations))
		for i, d := range m.destinations {
			choices[i] = choice{label: d.Label(), value: string(d)}
		}
		heading := titleStyle.Render(m.session.CurrentRoute.Name() + " complete")
		body = m.withStats(heading + "\n\nWhere next?\n\n" + m.viewChoices(choices))

	case screenEnded:
		body = m.viewEnding()

	case screenError:
		body = errorStyle.Render("Something went wrong") + "\n\n" +
			textStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(m.errorHelp())
	}

	return "\n" + body + "\n"
}

func (m Model) viewQuestion() string {
	current, ok := m.form.question()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Create your character") + "\n\n")
	b.WriteString(textStyle.Render(current.prompt) + "\n\n")

	if current.kind == kindText {
		b.WriteString(m.input.View() + "\n")
	} else {
		b.WriteString(m.viewChoices(current.choices))
	}

	if m.notice != "" {
		b.WriteString("\n" + errorStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: confirm  esc: quit"))
	return b.String()
}

func (m Model) viewChoices(choices []choice) string {
	var b strings.Builder
	for i, c := range choices {
		line := fmt.Sprintf("%d. %s", i+1, c.label)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(choiceStyle.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewEvent() string {
	event := m.session.CurrentEvent
	if event == nil {
		return ""
	}

	position, total := m.session.Progress()
	options := make([]choice, len(event.Options))
	for i, opt := range event.Options {
		options[i] = choice{label: opt.Text}
	}

	var b strings.Builder
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s  Event %d of %d", m.session.CurrentRoute.Name(), position, total)) + "\n\n")
	b.WriteString(titleStyle.Render(event.Title) + "\n\n")
	b.WriteString(textStyle.Width(m.textWidth()).Render(event.Description) + "\n\n")
	b.WriteString(m.viewChoices(options))
	if m.lastEffect != "" {
		b.WriteString("\n" + helpStyle.Render("Last choice: "+m.lastEffect))
	}
	return b.String()
}

func (m Model) viewEnding() string {
	ending := m.session.Ending
	if ending == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(ending.Emblem()+" "+ending.Title) + "\n\n")
	b.WriteString(helpStyle.Render(ending.StatType+" ending  "+ending.ArtKey()) + "\n\n")
	b.WriteString(textStyle.Width(m.textWidth()).Render(ending.Description) + "\n\n")
	if ending.CTA != "" {
		b.WriteString(selectedStyle.Render(ending.CTA) + "\n\n")
	}
	b.WriteString("Journey: " + strings.Join(m.session.RoutePath, " > ") + "\n")
	b.WriteString(renderStats(m.session.Stats) + "\n")
	b.WriteString(helpStyle.Render("r: play again  q: quit"))
	return m.withStats(b.String())
}

func (m Model) withStats(main string) string {
	if m.session == nil {
		return main
	}

	var b strings.Builder
	if m.card != nil {
		b.WriteString(titleStyle.Render(m.card.Name) + "\n" + m.card.Rank + "\n\n")
	}
	b.WriteString(titleStyle.Render("STATS") + "\n" + renderStats(m.session.Stats) + "\n\n")
	b.WriteString(titleStyle.Render("JOURNEY") + "\n" + strings.Join(m.session.RoutePath, " > "))

	return lipgloss.JoinHorizontal(lipgloss.Top, main, statsStyle.Render(b.String()))
}

func (m Model) textWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(20, m.width*3/4)
}

func renderStats(s quest.Stats) string {
	bar := func(v int) string {
		return strings.Repeat("■", v) + strings.Repeat("□", quest.StatMax-v)
	}
	return fmt.Sprintf("Knowledge %s\nCourage   %s\nLuck      %s",
		bar(s.Knowledge), bar(s.Courage), bar(s.Luck))
}

// canRetry reports whether reloading after the current error may succeed.
// Exhausted pools and rejected input fail the same way again.
func (m Model) canRetry() bool {
	return errors.GetCode(m.err).Retryable()
}

func (m Model) errorHelp() string {
	if m.canRetry() {
		return "r: retry  n: new game  q: quit"
	}
	return "n: new game  q: quit"
}
