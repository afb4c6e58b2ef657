package session

import (
	"context"

	"github.com/avicd/go-utilx/datax"
	"github.com/openmfg/go-metasql/logger"
)

// Keeper tracks the chain of open sessions of one goroutine. Sessions pop
// as they commit; the keeper closes everything once the chain drains, or
// immediately on rollback.
type Keeper struct {
	factory *Factory
	reused  int
	chain   datax.LinkedList[*Session]
	done    datax.LinkedList[*Session]
	Context context.Context
}

func (it *Keeper) Current() *Session {
	val, _ := it.chain.Last()
	return val
}

func (it *Keeper) Reuse() {
	it.reused++
	logger.Debug("session reused")
}

func (it *Keeper) Push(session *Session) {
	it.chain.Push(session)
}

func (it *Keeper) Pop() {
	if it.reused > 0 {
		it.reused--
		return
	}
	if val, ok := it.chain.Pop(); ok {
		it.done.Push(val)
	}
}

func (it *Keeper) Locked() bool {
	return it.chain.Len() > 0
}

func (it *Keeper) Commit() {
	it.done.ForEach(func(i int, item *Session) {
		item.close(false)
	})
	it.done.Clear()
	it.factory.ResetKeeper()
}

func (it *Keeper) Rollback() {
	closeFunc := func(i int, item *Session) {
		item.close(true)
	}
	it.done.ForEach(closeFunc)
	it.done.Clear()
	it.chain.ForEach(closeFunc)
	it.chain.Clear()
	it.factory.ResetKeeper()
}
