package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/eigerproject/eiger/internal/config"
)

// Console color numbers 0-15, in the classic console palette order.
var fgAttributes = [16]color.Attribute{
	color.FgBlack, color.FgBlue, color.FgGreen, color.FgCyan,
	color.FgRed, color.FgMagenta, color.FgYellow, color.FgWhite,
	color.FgHiBlack, color.FgHiBlue, color.FgHiGreen, color.FgHiCyan,
	color.FgHiRed, color.FgHiMagenta, color.FgHiYellow, color.FgHiWhite,
}

var bgAttributes = [16]color.Attribute{
	color.BgBlack, color.BgBlue, color.BgGreen, color.BgCyan,
	color.BgRed, color.BgMagenta, color.BgYellow, color.BgWhite,
	color.BgHiBlack, color.BgHiBlue, color.BgHiGreen, color.BgHiCyan,
	color.BgHiRed, color.BgHiMagenta, color.BgHiYellow, color.BgHiWhite,
}

// Terminal writes program output, applying the current console colors when
// the output supports them.
type Terminal struct {
	out     io.Writer
	enabled bool
	fg, bg  int
}

// NewTerminal decides color support from mode, see ColorEnabled.
func NewTerminal(out io.Writer, mode string) *Terminal {
	return &Terminal{
		out:     out,
		enabled: ColorEnabled(out, mode),
		fg:      config.DefaultFgColor,
		bg:      config.DefaultBgColor,
	}
}

// ColorEnabled reports whether output to out should be colored under mode
// (auto, always, never). Auto means out is a terminal and NO_COLOR is unset.
func ColorEnabled(out io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) Colors() (fg, bg int) {
	return t.fg, t.bg
}

func (t *Terminal) SetColors(fg, bg int) {
	t.fg, t.bg = fg, bg
}

func (t *Terminal) Write(s string) {
	if !t.enabled || (t.fg == config.DefaultFgColor && t.bg == config.DefaultBgColor) {
		_, _ = fmt.Fprint(t.out, s)
		return
	}
	c := color.New(fgAttributes[t.fg], bgAttributes[t.bg])
	c.EnableColor()
	_, _ = c.Fprint(t.out, s)
}

// Clear clears the screen. It does nothing when output is not a terminal.
func (t *Terminal) Clear() {
	if !t.enabled {
		return
	}
	_, _ = fmt.Fprint(t.out, "\033[H\033[2J")
}
