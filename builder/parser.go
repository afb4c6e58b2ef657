package builder

import (
	"fmt"
	"strings"

	"github.com/openmfg/go-metasql/script"
)

// Compiled is the outcome of parsing one template: the render tree, the
// validity flag, and the accumulated diagnostic log. An invalid template
// keeps whatever tree was built so far but must not be rendered.
type Compiled struct {
	Top   *script.BlockNode
	Valid bool
	log   strings.Builder
}

func (it *Compiled) Logf(format string, args ...any) {
	fmt.Fprintf(&it.log, format+"\n", args...)
}

func (it *Compiled) Log() string {
	return it.log.String()
}

// Compile parses a template into a balanced block tree rooted at a
// generic block. Structural errors (mismatched end tags, stray branch
// tags, unknown directives) stop the parse and leave the result invalid.
func Compile(query string) *Compiled {
	it := &Compiled{Top: &script.BlockNode{Kind: script.BlockGeneric}}
	stack := []*script.BlockNode{it.Top}
	current := it.Top

	for _, tok := range tokenize(query) {
		switch tok.kind {
		case tokenText:
			current.Append(&script.TextNode{Text: tok.body})
		case tokenComment:
			current.Append(&script.CommentNode{Text: tok.body})
		case tokenDirective:
			cmd, options := splitCommand(tok.body)
			switch cmd {
			case "endif", "endforeach":
				kind := current.Kind
				closesIf := cmd == "endif" &&
					(kind == script.BlockIf || kind == script.BlockElseIf || kind == script.BlockElse)
				closesForEach := cmd == "endforeach" && kind == script.BlockForEach
				if !closesIf && !closesForEach {
					it.Logf("encountered an unexpected %s", cmd)
					return it
				}
				stack = stack[:len(stack)-1]
				current = stack[len(stack)-1]

			case "if":
				cond, negated := parseCondition(options)
				if !cond.IsValid() {
					it.Logf("failed to create new %s block", cmd)
					return it
				}
				next := &script.BlockNode{Kind: script.BlockIf, Cond: cond, Not: negated}
				current.Append(next)
				stack = append(stack, next)
				current = next

			case "foreach":
				loopVar := parseLoopVar(options)
				if loopVar == "" {
					it.Logf("failed to create new %s block", cmd)
					return it
				}
				next := &script.BlockNode{Kind: script.BlockForEach, LoopVar: loopVar}
				current.Append(next)
				stack = append(stack, next)
				current = next

			case "elseif", "else":
				if current.Kind == script.BlockElse {
					it.Logf("encountered unexpected %s statement within else block", cmd)
					return it
				}
				if current.Kind != script.BlockIf && current.Kind != script.BlockElseIf {
					it.Logf("encountered unexpected %s statement outside of if/elseif block", cmd)
					return it
				}
				var next *script.BlockNode
				if cmd == "elseif" {
					cond, negated := parseCondition(options)
					if !cond.IsValid() {
						it.Logf("failed to create new %s block", cmd)
						return it
					}
					next = &script.BlockNode{Kind: script.BlockElseIf, Cond: cond, Not: negated}
				} else {
					next = &script.BlockNode{Kind: script.BlockElse}
				}
				// the branch replaces the open frame so one endif closes
				// the whole chain
				current.SetAlternate(next)
				stack[len(stack)-1] = next
				current = next

			default:
				fn := script.NewFuncNode(cmd, parseArgs(options))
				if !fn.IsValid() {
					it.Logf("failed to create new %s function", cmd)
					return it
				}
				current.Append(fn)
			}
		}
	}

	it.Valid = true
	return it
}
