// Package shell implements the toy command interpreter behind the terminal window.
//
// A line is split on whitespace; the first word, lowercased, picks a builtin and the
// rest are positional arguments. Builtins work against the virtual filesystem and may
// ask for a window to be opened or closed through a returned Intent. No failure ever
// escapes as a Go error: every problem becomes ordinary output, styled like bash.
package shell

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/deskterm/internal/vfs"
)

// Interpreter executes command lines against one filesystem. It holds the
// current directory and is not safe for concurrent use.
type Interpreter struct {
	fs       fileSystem
	identity Identity
	cwd      vfs.Path
}

// NewInterpreter creates an interpreter rooted at the home directory.
func NewInterpreter(fs fileSystem, identity Identity) *Interpreter {
	return &Interpreter{fs: fs, identity: identity, cwd: vfs.Path{}}
}

// Cwd returns a copy of the current directory.
func (ip *Interpreter) Cwd() vfs.Path {
	return append(vfs.Path{}, ip.cwd...)
}

// Prompt renders the bash-style prompt, e.g. "eve@ubuntu:~/projects$".
func (ip *Interpreter) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$", ip.identity.User, ip.identity.Host, ip.cwd)
}

// Reset returns to the home directory.
func (ip *Interpreter) Reset() {
	ip.cwd = vfs.Path{}
}

// call carries one invocation through a builtin.
type call struct {
	args    []string
	history []string
	res     *Result
}

func (c *call) print(lines ...Line) {
	c.res.Output = append(c.res.Output, lines...)
}

func (c *call) fail(format string, a ...any) {
	c.res.Failed = true
	c.res.Output = append(c.res.Output, plainLines(fmt.Sprintf(format, a...))...)
}

type builtinFunc func(ip *Interpreter, c *call)

var builtins = map[string]builtinFunc{
	"cd":      (*Interpreter).cd,
	"ls":      (*Interpreter).ls,
	"pwd":     (*Interpreter).pwd,
	"echo":    (*Interpreter).echo,
	"clear":   (*Interpreter).clear,
	"exit":    (*Interpreter).exit,
	"help":    (*Interpreter).help,
	"whoami":  (*Interpreter).whoami,
	"history": (*Interpreter).history,
	"man":     (*Interpreter).man,
	"cat":     (*Interpreter).cat,
	"touch":   (*Interpreter).touch,
	"mkdir":   (*Interpreter).mkdir,
	"rm":      (*Interpreter).rm,
	"mv":      (*Interpreter).mv,
	"cp":      (*Interpreter).cp,
}

// Vocabulary is the fixed list of verbs offered by tab completion, in match order.
var Vocabulary = []string{
	"cd", "ls", "pwd", "cat", "echo", "clear", "exit", "help", "whoami", "history", "man",
	"touch", "mkdir", "rm", "mv", "cp",
	"about", "projects", "skills", "contact", "settings", "code", "chrome",
}

// Execute runs one command line. history holds the previously submitted lines,
// oldest first, and is only read by the history builtin.
func (ip *Interpreter) Execute(line string, history []string) Result {
	line = strings.TrimSpace(line)
	res := Result{Command: line}
	words := strings.Fields(line)
	if len(words) == 0 {
		return res
	}
	verb := strings.ToLower(words[0])
	res.Verb = verb
	c := &call{args: words[1:], history: history, res: &res}

	if fn, ok := builtins[verb]; ok {
		fn(ip, c)
		return res
	}
	if l, ok := launchers[verb]; ok {
		ip.launch(c, l)
		return res
	}
	c.fail("bash: %s: command not found\nType 'help' to see available commands.", verb)
	return res
}

func (ip *Interpreter) pwd(c *call) {
	if ip.cwd.IsRoot() {
		c.print(plain(ip.identity.Home))
		return
	}
	c.print(plain(ip.identity.Home + "/" + strings.Join(ip.cwd, "/")))
}

func (ip *Interpreter) echo(c *call) {
	if len(c.args) == 0 {
		return
	}
	text := strings.Join(c.args, " ")
	for _, q := range []string{`"`, "'"} {
		if strings.HasPrefix(text, q) && strings.HasSuffix(text, q) {
			if len(text) < 2 {
				text = ""
			} else {
				text = text[1 : len(text)-1]
			}
			break
		}
	}
	c.print(plainLines(text)...)
}

func (ip *Interpreter) clear(c *call) {
	c.res.Clear = true
}

func (ip *Interpreter) exit(c *call) {
	c.res.Intent = &Intent{Action: ActionClose, ApplicationID: terminalApp}
}

func (ip *Interpreter) whoami(c *call) {
	c.print(plain(ip.identity.User))
}

func (ip *Interpreter) history(c *call) {
	for i, cmd := range c.history {
		c.print(Line{
			{Text: fmt.Sprint(i + 1), Kind: SegmentIndex},
			{Text: "  " + cmd},
		})
	}
}
