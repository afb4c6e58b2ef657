package builder

import (
	"strings"

	"github.com/openmfg/go-metasql/script"
)

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// splitCommand separates a directive body into its lower-cased command
// word and the trimmed remainder.
func splitCommand(body string) (string, string) {
	i := 0
	for i < len(body) && isWordChar(body[i]) {
		i++
	}
	return strings.ToLower(body[:i]), strings.TrimSpace(body[i:])
}

// parseArgs splits a function argument region into raw argument strings.
// When the region opens with a parenthesis only its content is read.
// Quotes delimit strings with backslash escapes; whitespace between
// arguments is dropped; commas outside strings separate arguments.
func parseArgs(options string) []string {
	options = strings.TrimSpace(options)
	if options == "" {
		return nil
	}
	var args []string
	var wip strings.Builder
	enclosed := options[0] == '('
	working := !enclosed
	inString := false
	var starter byte
loop:
	for p := 0; p < len(options); p++ {
		qc := options[p]
		if !working && enclosed && qc == '(' {
			working = true
			continue
		}
		if inString {
			switch {
			case qc == '\\':
				p++
				if p < len(options) {
					wip.WriteByte(options[p])
				}
			case qc == starter:
				inString = false
			default:
				wip.WriteByte(qc)
			}
			continue
		}
		switch {
		case qc == ',':
			args = append(args, wip.String())
			wip.Reset()
		case isSpace(qc):
			// eat white space
		case qc == '\'' || qc == '"':
			inString = true
			starter = qc
		case enclosed && qc == ')':
			break loop
		default:
			wip.WriteByte(qc)
		}
	}
	if wip.Len() > 0 {
		args = append(args, wip.String())
	}
	return args
}

// parseCondition reads an if/elseif option region: an optional leading
// "not " followed by a single condition function call.
func parseCondition(options string) (*script.FuncNode, bool) {
	wip := strings.TrimSpace(options)
	negated := false
	if len(wip) >= 4 && strings.EqualFold(wip[:4], "not ") {
		negated = true
		wip = wip[4:]
	}
	cmd, rest := splitCommand(wip)
	return script.NewFuncNode(cmd, parseArgs(rest)), negated
}

// parseLoopVar extracts the quoted loop variable name from a foreach
// option region. Unquoted characters outside parentheses bookkeeping are
// discarded.
func parseLoopVar(options string) string {
	tmp := strings.TrimSpace(options)
	var wip strings.Builder
	inString := false
	inList := 0
	var starter byte
loop:
	for p := 0; p < len(tmp); p++ {
		qc := tmp[p]
		if inString {
			switch {
			case qc == '\\':
				p++
				if p < len(tmp) {
					wip.WriteByte(tmp[p])
				}
			case qc == starter:
				inString = false
			default:
				wip.WriteByte(qc)
			}
			continue
		}
		switch {
		case qc == '(':
			inList++
		case qc == ')':
			inList--
			if inList < 1 {
				break loop
			}
		case qc == '\'' || qc == '"':
			inString = true
			starter = qc
		case qc == ',':
			break loop
		}
	}
	return wip.String()
}
