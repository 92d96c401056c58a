package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
)

func (m Model) loadOptions() tea.Cmd {
	return func() tea.Msg {
		out, err := m.svc.ListCharacterOptions(m.ctx, &questsvc.ListCharacterOptionsInput{})
		if err != nil {
			return errMsg{err}
		}
		return optionsLoadedMsg{options: out.Options}
	}
}

func (m Model) initialize(character *quest.Character) tea.Cmd {
	var sessionID string
	if m.session != nil {
		sessionID = m.session.ID
	}
	return func() tea.Msg {
		out, err := m.svc.InitializeSession(m.ctx, &questsvc.InitializeSessionInput{
			SessionID: sessionID,
			Character: character,
		})
		if err != nil {
			return errMsg{err}
		}
		card := out.Card
		return sessionMsg{session: out.Session, card: &card}
	}
}

func (m Model) selectCourse(course quest.CourseType) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.SelectCourseType(m.ctx, &questsvc.SelectCourseTypeInput{SessionID: id, CourseType: course})
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: out.Session}
	}
}

func (m Model) chooseOption(index int) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.ChooseOption(m.ctx, &questsvc.ChooseOptionInput{SessionID: id, OptionIndex: index})
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: out.Session, effect: out.Effect}
	}
}

func (m Model) drawEvent() tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.DrawEvent(m.ctx, &questsvc.DrawEventInput{SessionID: id})
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: out.Session}
	}
}

func (m Model) listTransitions() tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.ListTransitions(m.ctx, &questsvc.ListTransitionsInput{SessionID: id})
		if err != nil {
			return errMsg{err}
		}
		return transitionsMsg{destinations: out.Destinations}
	}
}

func (m Model) chooseTransition(destination quest.Destination) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.ChooseTransition(m.ctx, &questsvc.ChooseTransitionInput{SessionID: id, Destination: destination})
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: out.Session}
	}
}

func (m Model) reset() tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.ResetSession(m.ctx, &questsvc.ResetSessionInput{SessionID: id})
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: out.Session}
	}
}

// refresh reloads the session after an error and resumes from its phase
func (m Model) refresh() tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		out, err := m.svc.GetSession(m.ctx, &questsvc.GetSessionInput{SessionID: id})
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: out.Session}
	}
}

// Run starts the full-screen program and blocks until the player quits
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
