package session

import (
	"context"
	"database/sql"
	"reflect"

	"github.com/avicd/go-utilx/goid"
	"github.com/openmfg/go-metasql/logger"
)

// Factory hands out sessions per goroutine. A goroutine that opens a
// session while one is active reuses it, so nested statement calls share
// connections and transactions. A nested transactional open reuses the
// active session only when it is transactional with the same options;
// otherwise a new session is pushed onto the chain.
type Factory struct {
	config *Config
	local  map[int64]*Keeper
}

func (it *Factory) Keeper() *Keeper {
	sid := goid.Id()
	if keeper, ok := it.local[sid]; ok {
		return keeper
	}
	ret := &Keeper{
		factory: it,
		Context: context.Background(),
	}
	it.local[sid] = ret
	return ret
}

func (it *Factory) ResetKeeper() {
	delete(it.local, goid.Id())
}

func (it *Factory) Open() *Session {
	keeper := it.Keeper()
	if keeper.Locked() {
		keeper.Reuse()
		return keeper.Current()
	}
	session := &Session{
		config: it.config,
		keeper: keeper,
		ctx:    keeper.Context,
	}
	keeper.Push(session)
	logger.Debug("normal session opened")
	return session
}

func (it *Factory) OpenTx() *Session {
	return it.OpenTxWith(nil)
}

func (it *Factory) OpenTxWith(txOpts *sql.TxOptions) *Session {
	keeper := it.Keeper()
	if keeper.Locked() {
		session := keeper.Current()
		if session.txOn && reflect.DeepEqual(session.txOpts, txOpts) {
			keeper.Reuse()
			return session
		}
	}
	session := &Session{
		config: it.config,
		keeper: keeper,
		ctx:    keeper.Context,
		txOn:   true,
		txOpts: txOpts,
	}
	keeper.Push(session)
	logger.Debug("transactional session opened")
	return session
}
