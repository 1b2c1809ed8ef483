package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Print renders markdown through glamour and writes it to w. On a
// rendering failure the raw markdown is written instead so results are
// never lost to a styling problem.
func Print(w io.Writer, style, markdown string) error {
	out, err := renderStyled(style, markdown)
	if err != nil {
		_, werr := fmt.Fprintln(w, markdown)
		return werr
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func renderStyled(style, markdown string) (string, error) {
	if style == "" || style == "auto" {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
	return glamour.Render(markdown, style)
}
