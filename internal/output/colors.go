// Package output renders transaction reports to the terminal: the full
// multi-line report, the compact single-line form, the batch table, and
// the multi-endpoint comparison view.
package output

import "github.com/fatih/color"

// Colors for status indicators and banners.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off ANSI color codes, for CI logs and piped output.
func DisableColors() {
	color.NoColor = true
}

// Options controls report rendering.
type Options struct {
	Short bool // single summary line instead of the multi-line report
	Emoji bool // decorative symbols on each line
}

// sym returns the decorative prefix when emoji output is enabled, and the
// plain fallback otherwise.
func (o Options) sym(emoji, plain string) string {
	if o.Emoji {
		return emoji
	}
	return plain
}
