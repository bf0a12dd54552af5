package shell

import "strings"

type helpSection struct {
	title string
	rows  [][2]string
}

var helpSections = []helpSection{
	{"File Operations:", [][2]string{
		{"ls [options] [dir]", "List directory contents (-l: long format, -a: show hidden)"},
		{"cd [dir]", "Change directory"},
		{"pwd", "Print working directory"},
		{"cat [file]", "Display file contents"},
		{"touch [file]", "Create empty file"},
		{"mkdir [dir]", "Create directory"},
		{"rm [file]", "Remove file"},
		{"mv [src] [dest]", "Move/rename file"},
		{"cp [src] [dest]", "Copy file"},
	}},
	{"System:", [][2]string{
		{"whoami", "Display current user"},
		{"history", "Show command history"},
		{"clear", "Clear terminal"},
		{"exit", "Close terminal"},
		{"help", "Show this help message"},
		{"man [cmd]", "Show manual for command"},
	}},
	{"Applications:", [][2]string{
		{"about", "Open About window"},
		{"projects", "Open Projects window"},
		{"skills", "Open Skills window"},
		{"contact", "Open Contact window"},
		{"settings", "Open Settings window"},
		{"code", "Open VS Code"},
		{"chrome", "Open Chrome browser"},
	}},
}

func (ip *Interpreter) help(c *call) {
	c.print(plain("Available Commands:"))
	for i, s := range helpSections {
		if i > 0 {
			c.print(plain(""))
		}
		c.print(Line{{Text: s.title, Kind: SegmentHeading}})
		for _, r := range s.rows {
			c.print(plain("  " + padRight(r[0], 22) + r[1]))
		}
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (ip *Interpreter) man(c *call) {
	if len(c.args) == 0 {
		c.fail("What manual page do you want?\nFor example, try 'man ls' or 'man cd'.")
		return
	}
	name := strings.ToLower(c.args[0])
	page, ok := manPages[name]
	if !ok {
		c.fail("No manual entry for %s", name)
		return
	}
	c.print(plainLines(page)...)
}

var manPages = map[string]string{
	"ls": `LS(1)                    User Commands                   LS(1)

NAME
       ls - list directory contents

SYNOPSIS
       ls [OPTION]... [FILE]...

DESCRIPTION
       List  information  about  the FILEs (the current directory by default).
       Entries are shown in the order they were created.

OPTIONS
       -a, --all
              do not ignore entries starting with .

       -l     use a long listing format

EXAMPLES
       ls          list current directory
       ls -a       list all files including hidden
       ls -l       long format listing`,

	"cd": `CD(1)                    User Commands                   CD(1)

NAME
       cd - change directory

SYNOPSIS
       cd [DIRECTORY]

DESCRIPTION
       Change the current directory to DIRECTORY.  The default DIRECTORY is the
       value of the HOME shell variable.

EXAMPLES
       cd          go to home directory
       cd ..       go to parent directory
       cd ~/projects  go to projects directory`,

	"cat": `CAT(1)                   User Commands                  CAT(1)

NAME
       cat - concatenate files and print on the standard output

SYNOPSIS
       cat [FILE]...

DESCRIPTION
       Concatenate FILE(s) to standard output.

EXAMPLES
       cat file.txt    display file contents`,

	"pwd": `PWD(1)                   User Commands                  PWD(1)

NAME
       pwd - print name of current/working directory

SYNOPSIS
       pwd

DESCRIPTION
       Print the full filename of the current working directory.`,

	"mkdir": `MKDIR(1)                 User Commands                MKDIR(1)

NAME
       mkdir - make directories

SYNOPSIS
       mkdir [OPTION]... DIRECTORY...

DESCRIPTION
       Create the DIRECTORY(ies), if they do not already exist.`,

	"rm": `RM(1)                    User Commands                   RM(1)

NAME
       rm - remove files or directories

SYNOPSIS
       rm [OPTION]... FILE...

DESCRIPTION
       Remove the named FILE or directory.`,

	"touch": `TOUCH(1)                 User Commands                TOUCH(1)

NAME
       touch - change file timestamps

SYNOPSIS
       touch [OPTION]... FILE...

DESCRIPTION
       Create each FILE that does not exist as an empty file.`,
}
