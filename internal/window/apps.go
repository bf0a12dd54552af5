package window

// Application ids.
const (
	AppAbout    = "about"
	AppProjects = "projects"
	AppSkills   = "skills"
	AppContact  = "contact"
	AppTerminal = "terminal"
	AppGitHub   = "github"
	AppSettings = "settings"
	AppChrome   = "chrome"
	AppTrash    = "trash"
	AppVSCode   = "vscode"
	AppBlog     = "blog"
)

// Kind selects the content a window shows.
type Kind int

const (
	KindUnknown Kind = iota
	KindAbout
	KindProjects
	KindSkills
	KindContact
	KindTerminal
	KindSettings
	KindBrowser
	KindTrash
	KindCodeViewer
	KindExternalLink
)

func (k Kind) String() string {
	switch k {
	case KindAbout:
		return "about"
	case KindProjects:
		return "projects"
	case KindSkills:
		return "skills"
	case KindContact:
		return "contact"
	case KindTerminal:
		return "terminal"
	case KindSettings:
		return "settings"
	case KindBrowser:
		return "browser"
	case KindTrash:
		return "trash"
	case KindCodeViewer:
		return "code-viewer"
	case KindExternalLink:
		return "external-link"
	default:
		return "unknown"
	}
}

// App describes one launchable pane.
type App struct {
	ID              string
	Title           string
	Kind            Kind
	Favourite       bool
	DesktopShortcut bool
	URL             string // set for external links
	Short           string // dock label, defaults to Title
}

// DockLabel is the label used where space is tight.
func (a App) DockLabel() string {
	if a.Short != "" {
		return a.Short
	}
	return a.Title
}

// IsExternal reports whether the app opens a URL instead of a window.
func (a App) IsExternal() bool { return a.Kind == KindExternalLink }

// Registry is the fixed catalogue of applications.
type Registry struct {
	apps []App
}

// DefaultRegistry returns the desktop's applications in display order.
func DefaultRegistry() *Registry {
	return &Registry{apps: []App{
		{ID: AppAbout, Title: "About Eve", Kind: KindAbout, Short: "About", Favourite: true, DesktopShortcut: true},
		{ID: AppProjects, Title: "Projects", Kind: KindProjects, DesktopShortcut: true},
		{ID: AppSkills, Title: "Skills", Kind: KindSkills, DesktopShortcut: true},
		{ID: AppContact, Title: "Contact Me", Kind: KindContact, DesktopShortcut: true},
		{ID: AppTerminal, Title: "Terminal", Kind: KindTerminal, Short: "Term", Favourite: true},
		{ID: AppGitHub, Title: "GitHub", Kind: KindExternalLink, DesktopShortcut: true, URL: "https://github.com/Everoot"},
		{ID: AppSettings, Title: "Settings", Kind: KindSettings, Favourite: true},
		{ID: AppChrome, Title: "Google Chrome", Kind: KindBrowser, Short: "Chrome", Favourite: true},
		{ID: AppTrash, Title: "Trash", Kind: KindTrash, Favourite: true},
		{ID: AppVSCode, Title: "Visual Studio Code", Kind: KindCodeViewer, Short: "Code", Favourite: true},
		{ID: AppBlog, Title: "Blog", Kind: KindExternalLink, Favourite: true, DesktopShortcut: true, URL: "https://everoot.github.io/Blog/"},
	}}
}

// Lookup returns the app for id. Unknown ids resolve to a KindUnknown app titled by id.
func (r *Registry) Lookup(id string) App {
	for _, a := range r.apps {
		if a.ID == id {
			return a
		}
	}
	return App{ID: id, Title: id, Kind: KindUnknown}
}

// Known reports whether id is in the catalogue.
func (r *Registry) Known(id string) bool {
	return r.Lookup(id).Kind != KindUnknown
}

// All returns every app.
func (r *Registry) All() []App {
	out := make([]App, len(r.apps))
	copy(out, r.apps)
	return out
}

// DesktopShortcuts returns the apps with a desktop icon.
func (r *Registry) DesktopShortcuts() []App {
	return r.filter(func(a App) bool { return a.DesktopShortcut })
}

// Favourites returns the apps pinned to the sidebar.
func (r *Registry) Favourites() []App {
	return r.filter(func(a App) bool { return a.Favourite })
}

func (r *Registry) filter(keep func(App) bool) []App {
	var out []App
	for _, a := range r.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
