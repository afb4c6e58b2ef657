package session

import (
	"database/sql"
	"strings"

	"github.com/openmfg/go-metasql/logger"
)

// NameSpace is the group assigned to statements registered without one.
const NameSpace = "github.com/openmfg/go-metasql"

// Config is the statement registry plus the databases statements run
// against. Statements loaded from query-collection files register under
// "<group>.<name>" ids.
type Config struct {
	XmlScan string
	factory *Factory
	mainDB  *sql.DB
	dbMap   map[string]*sql.DB
	groups  map[string]string
	stmts   map[string]*Stmt
}

func (it *Config) MainDB() *sql.DB {
	return it.mainDB
}

func (it *Config) SetMainDB(db *sql.DB) {
	it.mainDB = db
	logger.Debug("set main database")
}

func (it *Config) SetDB(id string, db *sql.DB) *Config {
	if it.dbMap == nil {
		it.dbMap = map[string]*sql.DB{}
	}
	if it.mainDB == nil {
		it.SetMainDB(db)
	}
	it.dbMap[id] = db
	logger.Debugf("set database id='%s'", id)
	return it
}

func (it *Config) GetDB(id string) *sql.DB {
	return it.dbMap[id]
}

func (it *Config) AddGroup(group string, file string) {
	if it.groups == nil {
		it.groups = map[string]string{}
	}
	it.groups[group] = file
	logger.Debugf("add query group '%s', file=%s", group, file)
}

func (it *Config) GroupFile(group string) string {
	return it.groups[group]
}

func (it *Config) HasGroup(group string) bool {
	_, exist := it.groups[group]
	return exist
}

func (it *Config) AddStmt(stmt *Stmt) {
	if it.stmts == nil {
		it.stmts = map[string]*Stmt{}
	}
	stmt.config = it
	it.stmts[stmt.Id] = stmt
	logger.Debugf("add statement '%s'", stmt.Id)
}

func (it *Config) GetStmt(id string) *Stmt {
	return it.stmts[StmtIdOf(id)]
}

// Attach ties an anonymous statement to this config's databases without
// registering it.
func (it *Config) Attach(stmt *Stmt) {
	stmt.config = it
}

func (it *Config) Factory() *Factory {
	if it.factory == nil {
		it.factory = &Factory{config: it, local: map[int64]*Keeper{}}
	}
	return it.factory
}

// StmtIdOf qualifies a bare statement name with the default group.
func StmtIdOf(id string) string {
	if id == "" {
		return id
	}
	if !strings.Contains(id, ".") {
		id = NameSpace + "." + id
	}
	return id
}
