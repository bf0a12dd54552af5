package vfs

const resumeText = `Eve Liang
Full-Stack Software Engineer
Email: byleve2022@gmail.com
GitHub: github.com/Everoot`

const readmeText = `Welcome to Eve Liang's Portfolio Terminal!

Available Commands:
- help          Show available commands
- ls            List directory contents
- cd <dir>      Change directory
- cat <file>    Display file contents
- clear         Clear terminal
- pwd           Show current directory
- whoami        Show user information
- history       Show command history
- man <cmd>     Show manual for command`

// ProjectNames are the per-project directories under ~/projects.
var ProjectNames = []string{
	"agent-experience",
	"oculomics-ai",
	"housing-management",
	"portfolio",
	"ubuntu-portfolio",
}

// NewSeeded returns a filesystem holding the fixed initial tree:
//
//	about/ projects/ skills/ contact/ resume.txt README.md .git/ .config/
//
// in that insertion order, with one directory per project under projects/.
func NewSeeded(hidden *HiddenMatcher) *FileSystem {
	f := New(hidden)
	root := Path{}
	for _, dir := range []string{"about", "projects", "skills", "contact"} {
		mustSeed(f.Create(root, dir, KindDirectory))
	}
	mustSeed(f.WriteFile(root, "resume.txt", resumeText))
	mustSeed(f.WriteFile(root, "README.md", readmeText))
	mustSeed(f.Create(root, ".git", KindDirectory))
	mustSeed(f.Create(root, ".config", KindDirectory))

	projects := Path{"projects"}
	for _, name := range ProjectNames {
		mustSeed(f.Create(projects, name, KindDirectory))
	}
	return f
}

func mustSeed(err error) {
	if err != nil {
		panic("vfs: seeding initial tree: " + err.Error())
	}
}
