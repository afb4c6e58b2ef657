package script

import (
	"testing"

	"github.com/openmfg/go-metasql/param"
	"github.com/stretchr/testify/assert"
)

func foreachOf(loopVar string, items ...Node) *BlockNode {
	b := &BlockNode{Kind: BlockForEach, LoopVar: loopVar}
	for _, item := range items {
		b.Append(item)
	}
	return b
}

func build(node Node, params *param.Params) (string, map[string]any) {
	root := &BlockNode{Kind: BlockGeneric}
	root.Append(node)
	return NewSqlBuilder().Build(root, params)
}

func TestForEachPositions(t *testing.T) {
	loop := foreachOf("xs",
		NewFuncNode("value", []string{"xs"}),
		&TextNode{Text: ","},
	)
	ps := param.NewParams().Append("xs", []any{10, 20, 30})
	sqlStr, binds := build(loop, ps)
	assert.Equal(t, "_1_ ,_2_ ,_3_ ,", sqlStr)
	assert.Equal(t, map[string]any{"_1_": 10, "_2_": 20, "_3_": 30}, binds)
}

func TestForEachAbsentOrScalar(t *testing.T) {
	loop := foreachOf("xs", &TextNode{Text: "x"})

	sqlStr, _ := build(loop, param.NewParams())
	assert.Equal(t, "", sqlStr)

	sqlStr, _ = build(loop, param.NewParams().Append("xs", 7))
	assert.Equal(t, "", sqlStr)

	sqlStr, _ = build(loop, param.NewParams().Append("xs", []any{}))
	assert.Equal(t, "", sqlStr)
}

func TestBreakInnerLoopOnly(t *testing.T) {
	inner := foreachOf("ys",
		&TextNode{Text: "b"},
		NewFuncNode("break", nil),
		&TextNode{Text: "c"},
	)
	outer := foreachOf("xs", &TextNode{Text: "a"}, inner, &TextNode{Text: "d"})
	ps := param.NewParams().
		Append("xs", []any{1, 2}).
		Append("ys", []any{1, 2})
	sqlStr, _ := build(outer, ps)
	assert.Equal(t, "abdabd", sqlStr)
}

func TestBreakTwoLevels(t *testing.T) {
	inner := foreachOf("ys",
		&TextNode{Text: "b"},
		NewFuncNode("break", []string{"2"}),
	)
	outer := foreachOf("xs", &TextNode{Text: "a"}, inner, &TextNode{Text: "d"})
	ps := param.NewParams().
		Append("xs", []any{1, 2}).
		Append("ys", []any{1, 2})
	sqlStr, _ := build(outer, ps)
	assert.Equal(t, "ab", sqlStr)
}

func TestBreakBeyondDepthStopsEverything(t *testing.T) {
	inner := foreachOf("ys",
		&TextNode{Text: "b"},
		NewFuncNode("break", []string{"9"}),
	)
	outer := foreachOf("xs", &TextNode{Text: "a"}, inner, &TextNode{Text: "d"})
	ps := param.NewParams().
		Append("xs", []any{1, 2}).
		Append("ys", []any{1, 2})
	sqlStr, _ := build(outer, ps)
	assert.Equal(t, "ab", sqlStr)
}

func TestContinueSkipsRestOfIteration(t *testing.T) {
	loop := foreachOf("xs",
		NewFuncNode("value", []string{"xs"}),
		NewFuncNode("continue", nil),
		&TextNode{Text: "X"},
	)
	ps := param.NewParams().Append("xs", []any{1, 2})
	sqlStr, binds := build(loop, ps)
	assert.Equal(t, "_1_ _2_", sqlStr)
	assert.Len(t, binds, 2)
}

func TestContinueTwoLevels(t *testing.T) {
	inner := foreachOf("ys",
		&TextNode{Text: "b"},
		NewFuncNode("continue", []string{"2"}),
		&TextNode{Text: "c"},
	)
	outer := foreachOf("xs", &TextNode{Text: "a"}, inner, &TextNode{Text: "d"})
	ps := param.NewParams().
		Append("xs", []any{1, 2}).
		Append("ys", []any{1, 2})
	// continue(2) unwinds the inner loop and moves the outer one along
	sqlStr, _ := build(outer, ps)
	assert.Equal(t, "abab", sqlStr)
}

func TestIfElseChain(t *testing.T) {
	elseBlock := &BlockNode{Kind: BlockElse}
	elseBlock.Append(&TextNode{Text: "B"})
	ifBlock := &BlockNode{Kind: BlockIf, Cond: NewFuncNode("exists", []string{"x"})}
	ifBlock.Append(&TextNode{Text: "A"})
	ifBlock.SetAlternate(elseBlock)

	sqlStr, _ := build(ifBlock, param.NewParams().Append("x", 0))
	assert.Equal(t, "A", sqlStr)

	sqlStr, _ = build(ifBlock, param.NewParams())
	assert.Equal(t, "B", sqlStr)
}

func TestIfNegated(t *testing.T) {
	ifBlock := &BlockNode{Kind: BlockIf, Not: true, Cond: NewFuncNode("exists", []string{"x"})}
	ifBlock.Append(&TextNode{Text: "none"})

	sqlStr, _ := build(ifBlock, param.NewParams())
	assert.Equal(t, "none", sqlStr)

	sqlStr, _ = build(ifBlock, param.NewParams().Append("x", 1))
	assert.Equal(t, "", sqlStr)
}

func TestCommentRendersAsSpace(t *testing.T) {
	root := &BlockNode{Kind: BlockGeneric}
	root.Append(&TextNode{Text: "a"})
	root.Append(&CommentNode{Text: "-- gone"})
	root.Append(&TextNode{Text: "b"})
	sqlStr, _ := NewSqlBuilder().Build(root, param.NewParams())
	assert.Equal(t, "a b", sqlStr)
}
