package core

import "context"

// Command is a named side-effecting handler behind the registry.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Usage() string
	Execute(ctx context.Context, sess *Session, args []string) (string, error)
}

// CmdRegistry resolves raw input to a registered command. A miss is not an
// error: the dispatcher falls back to free-form conversation.
type CmdRegistry interface {
	Register(cmd Command) error
	Resolve(input string) (Command, []string, bool)
	ListCommands() []Command
}
