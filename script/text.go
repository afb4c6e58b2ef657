package script

import "github.com/openmfg/go-metasql/param"

type TextNode struct {
	Text string
}

func (it *TextNode) Render(ctx Context, params *param.Params) Flow {
	ctx.Append(it.Text)
	return Flow{}
}

// CommentNode keeps the comment source around but renders as a single
// space: comments never reach the database, yet the surrounding tokens
// must stay separated.
type CommentNode struct {
	Text string
}

func (it *CommentNode) Render(ctx Context, params *param.Params) Flow {
	ctx.Append(" ")
	return Flow{}
}
