package render

import (
	"github.com/fatih/color"
)

var (
	successStyle = color.New(color.FgGreen)
	warningStyle = color.New(color.FgYellow)
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgWhite, color.Bold)
)

// paint applies a style only when color output is enabled
func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}
