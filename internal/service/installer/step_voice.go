package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// VoiceStep decides whether responses are spoken by default
type VoiceStep struct {
	choices []string
	cursor  int
}

func NewVoiceStep() Step {
	return &VoiceStep{
		choices: []string{"Voice responses on", "Text only"},
	}
}

func (s *VoiceStep) Init() tea.Cmd {
	return nil
}

func (s *VoiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			if s.cursor == 0 {
				state.EnvVars["JARVIS_VOICE_ENABLED"] = "1"
			} else {
				state.EnvVars["JARVIS_VOICE_ENABLED"] = "0"
			}
			return nil, nil
		}
	}
	return s, nil
}

func (s *VoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("How should Jarvis answer by default?\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = ">"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
