package session

import (
	"testing"

	"github.com/openmfg/go-metasql/param"
	"github.com/openmfg/go-metasql/script"
	"github.com/stretchr/testify/assert"
)

func stmtOf(nodes ...script.Node) *Stmt {
	root := &script.BlockNode{Kind: script.BlockGeneric}
	for _, node := range nodes {
		root.Append(node)
	}
	return &Stmt{Valid: true, Node: root}
}

func TestEvalSqlRewritesPlaceholders(t *testing.T) {
	stmt := stmtOf(
		&script.TextNode{Text: "SELECT * FROM t WHERE a = "},
		script.NewFuncNode("value", []string{"a"}),
		&script.TextNode{Text: "AND b = "},
		script.NewFuncNode("value", []string{"b"}),
	)
	ps := param.NewParams().Append("a", 1).Append("b", "x")
	sqlStr, args := stmt.EvalSql(ps)
	assert.Equal(t, "SELECT * FROM t WHERE a = ? AND b = ?", sqlStr)
	assert.Equal(t, []any{1, "x"}, args)
}

func TestEvalSqlKeepsLookalikes(t *testing.T) {
	stmt := stmtOf(
		&script.TextNode{Text: "SELECT _9_ , col FROM t WHERE a = "},
		script.NewFuncNode("value", []string{"a"}),
	)
	sqlStr, args := stmt.EvalSql(param.NewParams().Append("a", 1))
	assert.Equal(t, "SELECT _9_ , col FROM t WHERE a = ?", sqlStr)
	assert.Equal(t, []any{1}, args)
}

func TestEvalSqlNoBindings(t *testing.T) {
	stmt := stmtOf(&script.TextNode{Text: "SELECT 1"})
	sqlStr, args := stmt.EvalSql(nil)
	assert.Equal(t, "SELECT 1", sqlStr)
	assert.Nil(t, args)
}

func TestInvalidStmtRendersEmpty(t *testing.T) {
	stmt := &Stmt{Valid: false, Log: "encountered an unexpected endif\n"}
	sqlStr, binds := stmt.ToSql(param.NewParams())
	assert.Equal(t, "", sqlStr)
	assert.Nil(t, binds)

	_, err := stmt.Select(nil)
	assert.Error(t, err)
}

func TestDetachedStmtCannotRun(t *testing.T) {
	stmt := stmtOf(&script.TextNode{Text: "SELECT 1"})
	_, err := stmt.Select(nil)
	assert.Error(t, err)
	_, err = stmt.Exec(nil)
	assert.Error(t, err)
}

func TestStmtIdOf(t *testing.T) {
	assert.Equal(t, NameSpace+".q", StmtIdOf("q"))
	assert.Equal(t, "orders.q", StmtIdOf("orders.q"))
	assert.Equal(t, "", StmtIdOf(""))
}
