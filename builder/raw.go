package builder

import (
	"github.com/openmfg/go-metasql/logger"
	"github.com/openmfg/go-metasql/session"
)

// RawBuilder compiles one inline template. With an Id it registers the
// statement under "<group>.<id>"; without one the statement stays
// anonymous and is only reachable through the Stmt field. Invalid
// templates are kept, carrying their parse log, so callers can inspect
// the diagnostics.
type RawBuilder struct {
	Id     string
	Group  string
	Script string
	Stmt   *session.Stmt
}

func (it *RawBuilder) Build(config *session.Config) {
	group := it.Group
	if group == "" {
		group = session.NameSpace
	}
	compiled := Compile(it.Script)
	stmt := &session.Stmt{
		Group:  group,
		Source: it.Script,
		Node:   compiled.Top,
		Valid:  compiled.Valid,
		Log:    compiled.Log(),
	}
	if !compiled.Valid {
		logger.Errorf("failed to compile statement '%s': %s", it.Id, compiled.Log())
	}
	it.Stmt = stmt
	if config == nil {
		return
	}
	if it.Id == "" {
		config.Attach(stmt)
		return
	}
	stmt.Id = group + "." + it.Id
	config.AddStmt(stmt)
}
