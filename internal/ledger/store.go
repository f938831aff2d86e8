// Package ledger holds the authoritative copy of accounts and the
// transaction log. All mutation goes through Commit under a single lock, so
// a reader observes either the pre-commit or the post-commit state, never a
// log entry without its balance adjustment.
package ledger

import (
	"cmp"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/zenith-digital/dashboard-api/internal/domain"
)

type logEntry struct {
	txn domain.Transaction
	seq uint64
}

// Store is the single owner of ledger state. Construct one with NewStore and
// hand it to the services; there is no package-level instance.
type Store struct {
	mu       sync.Mutex
	accounts []domain.Account
	log      []logEntry
	seq      uint64
}

func NewStore(accounts []domain.Account) *Store {
	s := &Store{accounts: make([]domain.Account, len(accounts))}
	copy(s.accounts, accounts)
	return s
}

// SnapshotAccounts returns an independent copy of all accounts in stable
// insertion order. Mutating the result never affects the store.
func (s *Store) SnapshotAccounts() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyAccountsLocked()
}

// SnapshotTransactions returns an independent copy of the log ordered by
// date descending; entries on the same date come back most-recently-inserted
// first, so a back-dated entry still lands in a deterministic position.
func (s *Store) SnapshotTransactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]logEntry, len(s.log))
	copy(entries, s.log)
	slices.SortFunc(entries, func(a, b logEntry) int {
		if c := b.txn.Date.Compare(a.txn.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	txns := make([]domain.Transaction, len(entries))
	for i, e := range entries {
		txns[i] = e.txn
	}
	return txns
}

// Commit assigns a fresh id to the validated transaction, appends it to the
// log and, if a checking account exists, adjusts its balance by +Amount for
// a credit or -Amount for a debit. The two steps are one atomic unit. Commit
// is total over validated input; all rejection happens upstream in the
// transaction service.
func (s *Store) Commit(txn domain.Transaction) (domain.Transaction, []domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	txn.ID = "txn-" + uuid.NewString()
	s.log = append(s.log, logEntry{txn: txn, seq: s.seq})

	for i := range s.accounts {
		if s.accounts[i].Kind != domain.AccountKindChecking {
			continue
		}
		if txn.Kind == domain.TransactionKindCredit {
			s.accounts[i].Balance = s.accounts[i].Balance.Add(txn.Amount)
		} else {
			s.accounts[i].Balance = s.accounts[i].Balance.Sub(txn.Amount)
		}
	}

	return txn, s.copyAccountsLocked()
}

func (s *Store) copyAccountsLocked() []domain.Account {
	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}
