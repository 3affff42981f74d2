package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"request submit": {"login", "models"},
	"models":         {"request submit"},
	"login":          {"dashboard", "whoami"},
	"register":       {"login"},
	"logout":         {"login"},
	"whoami":         {"dashboard"},
	"usage":          {"whoami"},
	"admin requests": {"admin approve <id>", "admin reject <id>"},
	"admin approve":  {"admin requests"},
	"admin reject":   {"admin requests"},
	"admin reports":  {"admin requests"},
	"dashboard":      {"logout"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "llmctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
