package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var defaultModels = map[string]struct {
	envKey string
	model  string
}{
	"gemini":     {"GEMINI_MODEL", "gemini-1.5-flash-latest"},
	"openai":     {"OPENAI_MODEL", "gpt-4o-mini"},
	"openrouter": {"OPENROUTER_MODEL", "openai/gpt-4o-mini"},
	"ollama":     {"OLLAMA_MODEL", "llama3"},
}

// ModelStep picks the model name, prefilled with the provider default
type ModelStep struct {
	input  textinput.Model
	envKey string
	ready  bool
}

func NewModelStep() Step {
	return &ModelStep{}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) setup(state *InstallState) bool {
	def, ok := defaultModels[state.EnvVars["LLM_PROVIDER"]]
	if !ok {
		return false
	}
	s.envKey = def.envKey

	s.input = textinput.New()
	s.input.Focus()
	s.input.CharLimit = 128
	s.input.Width = 40
	s.input.Placeholder = def.model
	s.ready = true
	return true
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.ready {
		if !s.setup(state) {
			return nil, nil
		}
		return s, textinput.Blink
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := s.input.Value()
			if value == "" {
				value = s.input.Placeholder
			}
			state.EnvVars[s.envKey] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if !s.ready {
		if !s.setup(state) {
			return "Loading..."
		}
	}
	return fmt.Sprintf("Model name (Enter keeps the default):\n\n%s\n\n(press enter to confirm)\n", s.input.View())
}
