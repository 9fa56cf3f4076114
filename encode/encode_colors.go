package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	SignColor ColorAttr = iota
	AtomColor
	ConnectiveColor
	ParenColor
	VerdictColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			SignColor:       color.RGB(196, 96, 16).SprintfFunc(),
			AtomColor:       color.RGB(8, 196, 16).SprintfFunc(),
			ConnectiveColor: color.RGB(255, 0, 196).SprintfFunc(),
			ParenColor:      color.RGB(96, 96, 96).SprintfFunc(),
			VerdictColor:    color.CyanString,
		},
	}
}

func colorDefault(s string, args ...any) string {
	return fmt.Sprintf(s, args...)
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
