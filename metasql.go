package metasql

import (
	"database/sql"

	"github.com/openmfg/go-metasql/builder"
	"github.com/openmfg/go-metasql/logger"
	"github.com/openmfg/go-metasql/session"
)

type MetaSQL struct {
	Config *session.Config
}

func New(config *session.Config, builders ...builder.Builder) *MetaSQL {
	ins := &MetaSQL{Config: config}
	if len(builders) > 0 {
		for _, bdl := range builders {
			bdl.Build(config)
		}
	} else {
		bdl := &builder.XmlBuilder{}
		bdl.Build(config)
	}
	return ins
}

// Parse compiles a standalone template. The statement expands with ToSql
// but has no database attached.
func Parse(query string) *session.Stmt {
	bdl := &builder.RawBuilder{Script: query}
	bdl.Build(nil)
	return bdl.Stmt
}

// StmtOf compiles raw template text against this engine's databases,
// registering it when an id is given.
func (it *MetaSQL) StmtOf(script string, ids ...string) *session.Stmt {
	var id string
	if len(ids) > 0 {
		id = ids[0]
	}
	bdl := &builder.RawBuilder{Id: id, Script: script}
	bdl.Build(it.Config)
	return bdl.Stmt
}

func (it *MetaSQL) Tx(fn func()) {
	it.TxWith(nil, fn)
}

func (it *MetaSQL) TxWith(txOpts *sql.TxOptions, fn func()) {
	sess := it.Config.Factory().OpenTxWith(txOpts)
	defer func() {
		err := recover()
		if err != nil {
			sess.Rollback()
			logger.Error(err)
		} else {
			sess.Commit()
		}
	}()
	fn()
}
