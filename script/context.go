package script

import "github.com/openmfg/go-metasql/param"

// ForeachPosSuffix is appended to a loop variable's name to form the
// derived parameter holding the current iteration index.
const ForeachPosSuffix = "__FOREACH_POS__"

// Flow is the control-flow result of rendering a node. Breaks counts the
// loop levels still to unwind; Continue selects continue over break at the
// outermost unwound loop.
type Flow struct {
	Breaks   int
	Continue bool
}

type Context interface {
	Append(sql string)
	BindValue(val any) string
}

type Node interface {
	Render(ctx Context, params *param.Params) Flow
}
