package terminal

import "github.com/Cyclone1070/deskterm/internal/shell"

// interpreter executes submitted lines. *shell.Interpreter satisfies it.
type interpreter interface {
	Execute(line string, history []string) shell.Result
	Prompt() string
	Reset()
}

// IntentHandler receives window intents emitted by executed commands.
type IntentHandler func(shell.Intent)
