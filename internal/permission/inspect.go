package permission

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Command is one simple command found inside a shell command line.
type Command struct {
	Name string
	Args []string
}

// mutatingCommands are commands whose path arguments change the filesystem
// and therefore need to pass the path guard.
var mutatingCommands = map[string]bool{
	"rm":       true,
	"rmdir":    true,
	"mv":       true,
	"cp":       true,
	"mkdir":    true,
	"touch":    true,
	"chmod":    true,
	"chown":    true,
	"ln":       true,
	"tee":      true,
	"truncate": true,
	"dd":       true,
}

// Mutates reports whether the command is known to modify the filesystem.
func (c Command) Mutates() bool {
	return mutatingCommands[c.Name]
}

// PathArgs returns the arguments that plausibly name filesystem paths:
// flags are skipped, as are chmod mode expressions and arguments carrying
// shell expansions whose value cannot be judged statically.
func (c Command) PathArgs() []string {
	var paths []string
	for _, arg := range c.Args {
		if arg == "" || strings.HasPrefix(arg, "-") || strings.Contains(arg, "$") {
			continue
		}
		if c.Name == "chmod" && isChmodMode(arg) {
			continue
		}
		paths = append(paths, arg)
	}
	return paths
}

func isChmodMode(arg string) bool {
	switch arg[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'u', 'g', 'o', 'a', '+', '=':
		return true
	}
	return false
}

// Inspect parses a shell command line (bash syntax) into the simple
// commands it would run, including those behind pipes, &&, ; and
// subshells.
func Inspect(command string) ([]Command, error) {
	parser := syntax.NewParser(
		syntax.Variant(syntax.LangBash),
		syntax.KeepComments(false),
	)
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}

	var commands []Command
	syntax.Walk(file, func(node syntax.Node) bool {
		if call, ok := node.(*syntax.CallExpr); ok {
			if cmd, ok := callToCommand(call); ok {
				commands = append(commands, cmd)
			}
		}
		return true
	})
	return commands, nil
}

// CheckCommandPaths is the semantic layer on top of the coarse prefix
// gate: it parses the command line and runs every path argument of every
// mutating command through the path guard.
func CheckCommandPaths(command string, accessibleRoots []string) error {
	commands, err := Inspect(command)
	if err != nil {
		return err
	}
	for _, cmd := range commands {
		if !cmd.Mutates() {
			continue
		}
		for _, path := range cmd.PathArgs() {
			if err := IsPathAccessible(path, accessibleRoots); err != nil {
				return err
			}
		}
	}
	return nil
}

func callToCommand(call *syntax.CallExpr) (Command, bool) {
	if len(call.Args) == 0 {
		return Command{}, false
	}
	cmd := Command{Name: wordText(call.Args[0])}
	if cmd.Name == "" {
		return Command{}, false
	}
	for _, arg := range call.Args[1:] {
		cmd.Args = append(cmd.Args, wordText(arg))
	}
	return cmd, true
}

// wordText flattens a shell word to plain text. Dynamic parts (parameter
// expansions, command substitutions) keep a $ marker so PathArgs can skip
// them.
func wordText(word *syntax.Word) string {
	var sb strings.Builder
	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				if lit, ok := inner.(*syntax.Lit); ok {
					sb.WriteString(lit.Value)
				} else {
					sb.WriteString("$")
				}
			}
		case *syntax.ParamExp:
			sb.WriteString("$" + p.Param.Value)
		case *syntax.CmdSubst:
			sb.WriteString("$()")
		}
	}
	return sb.String()
}
