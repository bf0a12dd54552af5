package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/deskterm/internal/prefs"
	"github.com/Cyclone1070/deskterm/internal/window"
)

type project struct {
	name    string
	company string
	stack   []string
	summary string
}

var projects = []project{
	{
		name:    "Agent Experience Platform",
		company: "Comcast",
		stack:   []string{"Angular 16", "Spring Boot", "GraphQL-DGS", "Kafka"},
		summary: "Data-intensive platform integrating billing, order, and device workflows used by 10,000+ agents.",
	},
	{
		name:    "Oculomics AI Platform",
		company: "UT Southwestern / SMU",
		stack:   []string{"React", "Python", "ECharts", "Flask"},
		summary: "Clinical AI research platform with dataset visualization, experiment tracking, and real-time result inspection.",
	},
	{
		name:    "Housing Management System",
		company: "Beaconfire",
		stack:   []string{"React", "TypeScript", "Spring Boot", "Spring Cloud"},
		summary: "Employee onboarding module with structured, data-driven workflows for housing management.",
	},
	{
		name:    "Distributed Task Scheduler",
		company: "Personal Project",
		stack:   []string{"Node.js", "TypeScript", "MongoDB", "Redis", "Docker"},
		summary: "Task scheduling with priority queues, retries, and a job monitoring dashboard.",
	},
}

const aboutMarkdown = `# Eve Liang

Full-Stack Software Engineer based in Philadelphia, PA.

I build data-heavy web platforms end to end, from Angular and React front ends
to Spring Boot services, GraphQL APIs and Kafka pipelines.

Try the **Terminal**: ` + "`help`" + ` lists every command.`

const skillsMarkdown = `# Skills

## Frontend
- Angular, React, TypeScript, RxJS
- ECharts, HTML and CSS

## Backend
- Java, Spring Boot, Spring Cloud
- GraphQL, REST, Node.js, Python

## Data and infrastructure
- Kafka, PostgreSQL, MongoDB, Redis
- Docker, Kubernetes, AWS, Jenkins`

const contactMarkdown = `# Contact Me

- **Email**: byleve2022@gmail.com
- **GitHub**: github.com/Everoot
- **Location**: Philadelphia, PA`

// PaneMarkdown returns the markdown shown inside a window of the given kind.
// The terminal draws its own body and gets "".
func PaneMarkdown(kind window.Kind, p prefs.Preferences) string {
	switch kind {
	case window.KindAbout:
		return aboutMarkdown
	case window.KindProjects:
		return projectsMarkdown()
	case window.KindSkills:
		return skillsMarkdown
	case window.KindContact:
		return contactMarkdown
	case window.KindSettings:
		return fmt.Sprintf("# Settings\n\n- **Background**: %s (b to change)\n- **Sound**: %d%% (+/- to adjust)\n- **Brightness**: %d%% ([/] to adjust)",
			p.Background, p.SoundLevel, p.BrightnessLevel)
	case window.KindTrash:
		return trashMarkdown(p)
	case window.KindBrowser:
		return fmt.Sprintf("# Google Chrome\n\nNow showing **%s**\n\nType an address and press enter.", p.ChromeDisplayURL)
	case window.KindCodeViewer:
		return fmt.Sprintf("# Visual Studio Code\n\nOpen file: `%s`", p.VSCodePath)
	case window.KindTerminal:
		return ""
	default:
		return "Nothing to show here."
	}
}

func projectsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Projects\n")
	for _, pr := range projects {
		fmt.Fprintf(&b, "\n## %s\n\n*%s*\n\n%s\n\n%s\n", pr.name, pr.company, pr.summary, strings.Join(pr.stack, ", "))
	}
	return b.String()
}

func trashMarkdown(p prefs.Preferences) string {
	if p.TrashIsEmpty() {
		return "# Trash\n\nTrash is empty"
	}
	var b strings.Builder
	b.WriteString("# Trash\n\n")
	for _, item := range p.TrashItems {
		fmt.Fprintf(&b, "- %s\n", item.Name)
	}
	b.WriteString("\nPress e to empty the trash.")
	return b.String()
}
