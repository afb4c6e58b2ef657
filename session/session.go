package session

import (
	"context"
	"database/sql"

	"github.com/openmfg/go-metasql/logger"
)

// Session owns the connections, transactions, and prepared statements of
// one unit of work. Sessions come from the Factory and are returned
// through Commit or Rollback.
type Session struct {
	config  *Config
	txOn    bool
	txOpts  *sql.TxOptions
	ctx     context.Context
	keeper  *Keeper
	txs     []*sql.Tx
	cons    []*sql.Conn
	stmts   []*sql.Stmt
	dbProxy map[*sql.DB]DBProxy
	closed  bool
}

type DBProxy interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (it *Session) getDBProxy(stmt *Stmt) (DBProxy, error) {
	if it.dbProxy == nil {
		it.dbProxy = map[*sql.DB]DBProxy{}
	}
	if db, ok := it.dbProxy[stmt.DB()]; ok {
		return db, nil
	}
	conn, err := stmt.DB().Conn(it.ctx)
	if err != nil {
		return nil, err
	}
	it.cons = append(it.cons, conn)
	if it.txOn {
		tx, err := conn.BeginTx(it.ctx, it.txOpts)
		if err != nil {
			return nil, err
		}
		it.dbProxy[stmt.DB()] = tx
		it.txs = append(it.txs, tx)
		return tx, nil
	}
	it.dbProxy[stmt.DB()] = conn
	return conn, nil
}

func (it *Session) prepare(stmt *Stmt, sql string) (*sql.Stmt, error) {
	proxy, err := it.getDBProxy(stmt)
	if err != nil {
		return nil, err
	}
	prepared, err := proxy.PrepareContext(it.ctx, sql)
	if err != nil {
		return nil, err
	}
	it.stmts = append(it.stmts, prepared)
	return prepared, nil
}

func (it *Session) Query(stmt *Stmt, sql string, values []any) (*sql.Rows, error) {
	prepared, err := it.prepare(stmt, sql)
	if err != nil {
		return nil, err
	}
	return prepared.QueryContext(it.ctx, values...)
}

func (it *Session) Exec(stmt *Stmt, sql string, values []any) (sql.Result, error) {
	prepared, err := it.prepare(stmt, sql)
	if err != nil {
		return nil, err
	}
	return prepared.ExecContext(it.ctx, values...)
}

func (it *Session) Commit() {
	if it.closed {
		return
	}
	it.keeper.Pop()
	if !it.keeper.Locked() {
		it.keeper.Commit()
	}
}

func (it *Session) Rollback() {
	if it.closed {
		return
	}
	it.keeper.Rollback()
}

func (it *Session) close(rollback bool) {
	if it.closed {
		return
	}
	it.closed = true
	for _, tx := range it.txs {
		var err error
		if rollback {
			err = tx.Rollback()
		} else {
			err = tx.Commit()
		}
		if err != nil {
			logger.Error(err.Error())
		}
	}
	for _, stmt := range it.stmts {
		if err := stmt.Close(); err != nil {
			logger.Error(err.Error())
		}
	}
	for _, conn := range it.cons {
		if err := conn.Close(); err != nil {
			logger.Error(err.Error())
		}
	}
	it.cons = nil
	it.txs = nil
	it.stmts = nil
}
