package session

import (
	"database/sql"
	"errors"
	"regexp"

	"github.com/openmfg/go-metasql/param"
	"github.com/openmfg/go-metasql/scan"
	"github.com/openmfg/go-metasql/script"
)

var bindPattern = regexp.MustCompile(`\b_[0-9]+_\b`)

// Stmt is one compiled query template. A statement renders to a
// placeholder-bound SQL string plus the placeholder bindings; attached to
// a Config it can also bind and run against a database.
type Stmt struct {
	config *Config
	Id     string
	Group  string
	DbId   string
	Source string
	Node   script.Node
	Valid  bool
	Log    string
}

func (it *Stmt) DB() *sql.DB {
	if it.config == nil {
		return nil
	}
	if it.DbId != "" {
		return it.config.GetDB(it.DbId)
	}
	return it.config.MainDB()
}

// ToSql expands the template against params. Each value() site binds its
// resolved value under a generated placeholder name; the returned map is
// the only channel for those values. Invalid statements expand to "".
func (it *Stmt) ToSql(params *param.Params) (string, map[string]any) {
	if !it.Valid || it.Node == nil {
		return "", nil
	}
	return script.NewSqlBuilder().Build(it.Node, params)
}

// EvalSql renders and then rewrites the generated placeholders to
// positional '?' marks, in textual order, for drivers without named
// binds. Text that merely looks like a placeholder is left alone.
func (it *Stmt) EvalSql(params *param.Params) (string, []any) {
	sqlStr, binds := it.ToSql(params)
	if len(binds) < 1 {
		return sqlStr, nil
	}
	var args []any
	sqlStr = bindPattern.ReplaceAllStringFunc(sqlStr, func(name string) string {
		val, ok := binds[name]
		if !ok {
			return name
		}
		args = append(args, val)
		return "?"
	})
	return sqlStr, args
}

// Select renders, binds, and runs the statement, draining the result set.
func (it *Stmt) Select(params *param.Params) ([]map[string]any, error) {
	if err := it.runnable(); err != nil {
		return nil, err
	}
	sqlStr, args := it.EvalSql(params)
	sess := it.config.Factory().Open()
	rows, err := sess.Query(it, sqlStr, args)
	if err != nil {
		sess.Rollback()
		return nil, err
	}
	out, err := scan.Rows(rows)
	rows.Close()
	if err != nil {
		sess.Rollback()
		return nil, err
	}
	sess.Commit()
	return out, nil
}

// Exec renders, binds, and runs the statement for its side effects.
func (it *Stmt) Exec(params *param.Params) (sql.Result, error) {
	if err := it.runnable(); err != nil {
		return nil, err
	}
	sqlStr, args := it.EvalSql(params)
	sess := it.config.Factory().Open()
	result, err := sess.Exec(it, sqlStr, args)
	if err != nil {
		sess.Rollback()
		return nil, err
	}
	sess.Commit()
	return result, nil
}

func (it *Stmt) runnable() error {
	if !it.Valid {
		return errors.New("statement is not valid: " + it.Log)
	}
	if it.config == nil || it.DB() == nil {
		return errors.New("statement has no database")
	}
	return nil
}
