package shell

import "github.com/Cyclone1070/deskterm/internal/window"

const terminalApp = window.AppTerminal

// launcher maps an application verb to the window it opens.
type launcher struct {
	appID string
	label string
}

var launchers = map[string]launcher{
	"about":    {appID: window.AppAbout, label: "About window"},
	"projects": {appID: window.AppProjects, label: "Projects window"},
	"skills":   {appID: window.AppSkills, label: "Skills window"},
	"contact":  {appID: window.AppContact, label: "Contact window"},
	"settings": {appID: window.AppSettings, label: "Settings window"},
	"code":     {appID: window.AppVSCode, label: "VS Code"},
	"chrome":   {appID: window.AppChrome, label: "Chrome"},
}

func (ip *Interpreter) launch(c *call, l launcher) {
	c.res.Intent = &Intent{Action: ActionOpen, ApplicationID: l.appID}
	c.print(plain("Opening " + l.label + "..."))
}
