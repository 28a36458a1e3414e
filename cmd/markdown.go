package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders doc for the terminal. It falls back to the raw
// markdown if it cannot be rendered.
func printMarkdown(w io.Writer, doc string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		var out string
		if out, err = r.Render(doc); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, doc)
}
