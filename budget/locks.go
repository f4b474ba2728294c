package budget

import "sync"

// userLocks serializes budget mutations per user. Expense addition is a
// read-modify-write of the whole document, so two concurrent additions for
// the same user would otherwise overwrite each other's category list.
var userLocks sync.Map

// Lock acquires the mutation lock for a user and returns the unlock
// function.
func Lock(userID string) func() {
	mu, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
