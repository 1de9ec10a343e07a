package cli

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

//go:embed usage.md
var usageMarkdown string

// printUsage renders the post-install instructions. Rendering trouble
// degrades to the raw markdown; the instructions always reach the user.
func printUsage(w io.Writer) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76))
	if err != nil {
		fmt.Fprintln(w, usageMarkdown)
		return nil
	}
	out, err := r.Render(usageMarkdown)
	if err != nil {
		fmt.Fprintln(w, usageMarkdown)
		return nil
	}
	fmt.Fprint(w, out)
	return nil
}
