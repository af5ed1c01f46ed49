package command

import (
	"sort"
	"strings"

	"github.com/halcyondev/jarvis/internal/core"
)

// phrases maps spoken multi-word forms onto canonical command input.
// Matching is longest-prefix so "shut down the computer" resolves before "shut".
var phrases = map[string]string{
	"what time is it":    "time",
	"what's the time":    "time",
	"tell me the time":   "time",
	"what is the date":   "date",
	"what's the date":    "date",
	"today's date":       "date",
	"shut down":          "system shutdown",
	"turn off":           "system shutdown",
	"restart computer":   "system restart",
	"reboot":             "system restart",
	"go to sleep":        "system sleep",
	"lock screen":        "system lock",
	"lock computer":      "system lock",
	"sign out":           "system logout",
	"log out":            "system logout",
	"task manager":       "processes",
	"running processes":  "processes",
	"system information": "system_info",
	"about computer":     "system_info",
	"stop listening":     "voice off",
	"start listening":    "voice on",
	"send email":         "email",
	"compose email":      "email",
	"clear screen":       "clear",
	"goodbye":            "exit",
	"good bye":           "exit",
}

// Registry resolves user input to registered commands by name, alias
// or spoken phrase.
type Registry struct {
	commands map[string]core.Command
	names    []string
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]core.Command),
	}
}

func (r *Registry) Register(cmd core.Command) error {
	keys := append([]string{cmd.Name()}, cmd.Aliases()...)
	for i := range keys {
		keys[i] = strings.ToLower(keys[i])
	}

	// Validate every key first so a duplicate leaves the registry untouched.
	for _, key := range keys {
		if _, exists := r.commands[key]; exists {
			return core.ErrDuplicateCommand
		}
	}

	for _, key := range keys {
		r.commands[key] = cmd
	}
	r.names = append(r.names, cmd.Name())
	return nil
}

// Resolve maps raw input to a command and its arguments. The boolean is
// false when no command matches and the input should go to the model.
func (r *Registry) Resolve(input string) (core.Command, []string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return nil, nil, false
	}

	if mapped, rest, ok := r.matchPhrase(normalized); ok {
		normalized = strings.TrimSpace(mapped + " " + rest)
	}

	parts := strings.Fields(normalized)
	cmd, ok := r.commands[parts[0]]
	if !ok {
		return nil, nil, false
	}
	return cmd, parts[1:], true
}

// matchPhrase finds the longest phrase that prefixes the input on a word
// boundary and returns its canonical form plus the remaining words.
func (r *Registry) matchPhrase(input string) (mapped, rest string, ok bool) {
	best := ""
	for phrase := range phrases {
		if phrase != input && !strings.HasPrefix(input, phrase+" ") {
			continue
		}
		if len(phrase) > len(best) {
			best = phrase
		}
	}
	if best == "" {
		return "", "", false
	}
	return phrases[best], strings.TrimSpace(strings.TrimPrefix(input, best)), true
}

// ListCommands returns registered commands sorted by name, each listed once.
func (r *Registry) ListCommands() []core.Command {
	names := make([]string, len(r.names))
	copy(names, r.names)
	sort.Strings(names)

	res := make([]core.Command, 0, len(names))
	for _, name := range names {
		res = append(res, r.commands[strings.ToLower(name)])
	}
	return res
}
