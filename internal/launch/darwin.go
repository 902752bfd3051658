package launch

import (
	"fmt"
	"strings"
)

// buildDarwin emits `open -na` invocations. A tool command is never passed
// to the terminal app as arguments: that route goes through Apple Events
// and raises automation permission prompts. The tool is written into a
// temporary script instead, and the script path becomes the app's single
// argument.
func (b *Builder) buildDarwin(app, dir, tool string) (*Command, error) {
	if tool == "" {
		return &Command{
			Line: fmt.Sprintf("open -na %s %s", quoteDouble(app), quoteDouble(dir)),
		}, nil
	}
	scr, err := b.scripts.Create(darwinScript(dir, tool))
	if err != nil {
		return nil, err
	}
	return &Command{
		Line:    fmt.Sprintf("open -na %s %s", quoteDouble(app), quoteDouble(scr.Path)),
		cleanup: scr.Cleanup,
	}, nil
}

// darwinScript builds the stay-open wrapper: enter the working directory,
// run the tool, then replace the process image with the user's login shell
// so the window stays interactive after the tool exits or fails.
func darwinScript(dir, tool string) string {
	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&sb, "cd %s\n", quoteDouble(dir))
	sb.WriteString(tool + "\n")
	sb.WriteString(`exec "$SHELL" -l` + "\n")
	return sb.String()
}
