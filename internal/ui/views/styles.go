package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/deskterm/internal/config"
)

// Role selects the style a cell is painted with.
type Role int

const (
	RolePlain Role = iota
	RoleDesktop
	RoleFrame
	RoleFrameFocused
	RoleTitle
	RoleButton
	RoleDirectory
	RoleFile
	RoleIndex
	RoleHeading
	RolePrompt
	RoleCaret
	RoleMuted
	RoleBar
	RoleBarActive
	RoleIcon
	roleCount
)

// Palette maps every Role to a lipgloss style.
type Palette [roleCount]lipgloss.Style

// NewPalette builds the palette from the configured colors. The wallpaper key
// picks the desktop backdrop.
func NewPalette(cfg config.UIConfig, wallpaper string) Palette {
	accent := lipgloss.Color(cfg.ColorAccent)
	dir := lipgloss.Color(cfg.ColorDirectory)
	prompt := lipgloss.Color(cfg.ColorPrompt)
	muted := lipgloss.Color(cfg.ColorMuted)
	backdrop := lipgloss.Color("53")
	if wallpaper == "wall-2" {
		backdrop = lipgloss.Color("23")
	}
	bar := lipgloss.Color("235")

	var p Palette
	p[RolePlain] = lipgloss.NewStyle()
	p[RoleDesktop] = lipgloss.NewStyle().Background(backdrop)
	p[RoleFrame] = lipgloss.NewStyle().Foreground(muted)
	p[RoleFrameFocused] = lipgloss.NewStyle().Foreground(accent)
	p[RoleTitle] = lipgloss.NewStyle().Bold(true)
	p[RoleButton] = lipgloss.NewStyle().Foreground(accent)
	p[RoleDirectory] = lipgloss.NewStyle().Foreground(dir).Bold(true)
	p[RoleFile] = lipgloss.NewStyle()
	p[RoleIndex] = lipgloss.NewStyle().Foreground(muted)
	p[RoleHeading] = lipgloss.NewStyle().Foreground(accent).Bold(true)
	p[RolePrompt] = lipgloss.NewStyle().Foreground(prompt).Bold(true)
	p[RoleCaret] = lipgloss.NewStyle().Reverse(true)
	p[RoleMuted] = lipgloss.NewStyle().Foreground(muted)
	p[RoleBar] = lipgloss.NewStyle().Background(bar).Foreground(lipgloss.Color("252"))
	p[RoleBarActive] = lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("232")).Bold(true)
	p[RoleIcon] = lipgloss.NewStyle().Background(backdrop).Foreground(lipgloss.Color("255"))
	return p
}
