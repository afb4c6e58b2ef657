package script

import "github.com/openmfg/go-metasql/param"

type Block int

const (
	BlockGeneric Block = iota
	BlockIf
	BlockElseIf
	BlockElse
	BlockForEach
)

// BlockNode is a control-flow region of the template. An if/elseif carries
// its condition and may chain further branches through Alt; a foreach
// carries its loop variable.
type BlockNode struct {
	Kind    Block
	Items   []Node
	Alt     *BlockNode
	Not     bool
	Cond    *FuncNode
	LoopVar string
}

func (it *BlockNode) Append(node Node) {
	if node != nil {
		it.Items = append(it.Items, node)
	}
}

func (it *BlockNode) SetAlternate(alt *BlockNode) {
	it.Alt = alt
}

func (it *BlockNode) Render(ctx Context, params *param.Params) Flow {
	switch it.Kind {
	case BlockIf, BlockElseIf:
		return it.renderIf(ctx, params)
	case BlockForEach:
		return it.renderForEach(ctx, params)
	}
	return it.renderItems(ctx, params, Flow{})
}

// renderItems evaluates children in order, stopping as soon as a break or
// continue is pending.
func (it *BlockNode) renderItems(ctx Context, params *param.Params, flow Flow) Flow {
	for _, node := range it.Items {
		if f := node.Render(ctx, params); f.Breaks > 0 {
			flow = f
		}
		if flow.Breaks > 0 {
			break
		}
	}
	return flow
}

func (it *BlockNode) renderIf(ctx Context, params *param.Params) Flow {
	val, flow := it.Cond.Eval(params)
	b := param.AsBool(val)
	if it.Not {
		b = !b
	}
	if b {
		return it.renderItems(ctx, params, flow)
	}
	if it.Alt != nil {
		return it.Alt.Render(ctx, params)
	}
	return flow
}

func (it *BlockNode) renderForEach(ctx Context, params *param.Params) Flow {
	val, found := params.Value(it.LoopVar)
	if !found {
		return Flow{}
	}
	items, _ := param.ListOf(val)
	posName := it.LoopVar + ForeachPosSuffix
	for i := range items {
		// shadow the position entry, keep everything else
		scope := param.NewParams().Append(posName, i)
		for n := 0; n < params.Count(); n++ {
			if params.Name(n) != posName {
				scope.Append(params.Name(n), params.ValueAt(n))
			}
		}

		my := Flow{}
		for _, node := range it.Items {
			if f := node.Render(ctx, scope); f.Breaks > 0 {
				my = f
				break
			}
		}
		if my.Breaks > 0 {
			my.Breaks--
			if my.Breaks > 0 || !my.Continue {
				return my
			}
		}
	}
	return Flow{}
}
