// Package banner renders the intro line printed before prompting.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type rgb struct{ r, g, b uint8 }

var (
	gradientFrom = rgb{0x42, 0xd3, 0x92}
	gradientTo   = rgb{0x64, 0x7e, 0xff}
)

// Default is the plain banner.
func Default(text string) string {
	return text
}

// Gradient colours text character by character from green to blue.
func Gradient(text string) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	runes := []rune(text)
	var b strings.Builder
	for i, ch := range runes {
		if ch == ' ' {
			b.WriteRune(ch)
			continue
		}
		c := lerp(gradientFrom, gradientTo, i, len(runes))
		style := r.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)))
		b.WriteString(style.Render(string(ch)))
	}
	return b.String()
}

func lerp(from, to rgb, i, n int) rgb {
	if n <= 1 {
		return from
	}
	mix := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*i/(n-1))
	}
	return rgb{mix(from.r, to.r), mix(from.g, to.g), mix(from.b, to.b)}
}

// For returns the gradient banner when w is a terminal with true-colour
// support, and the default banner otherwise.
func For(w io.Writer, text string) string {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return Default(text)
	}
	if termenv.NewOutput(f).Profile != termenv.TrueColor {
		return Default(text)
	}
	return Gradient(text)
}
