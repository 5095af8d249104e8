package ledger

import "sync"

// Every balance-sufficiency decision happens under that account's mutex, so
// two concurrent transfers cannot both pass the check against a stale balance.

func (e *Engine) accountLock(number string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	if _, exists := e.locks[number]; !exists {
		e.locks[number] = &sync.Mutex{}
	}
	return e.locks[number]
}

// lockPair acquires both account locks in account-number order, regardless of
// which side is source or destination, so opposing transfers between the same
// pair cannot deadlock. The returned function releases both.
func (e *Engine) lockPair(a, b string) func() {
	first, second := e.accountLock(a), e.accountLock(b)
	if b < a {
		first, second = second, first
	}

	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
