//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork with the same conditional
// write semantics as the PostgreSQL one. Reads see committed state only; a row
// written by an open transaction is locked until that transaction ends, and a
// second writer blocks on that lock and then re-checks its condition.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	released *sync.Cond
	auctions map[uuid.UUID]auction.Auction
	bids     []*auction.Bid
	locks    map[uuid.UUID]*tx
	accesses int
	commits  int

	forcedConflicts int
	applyErr        error

	// BeforeApplyBid runs inside the transaction right before the conditional
	// write, outside the store lock. Tests use it to line up racing bidders.
	BeforeApplyBid func(next *auction.Auction)
	// BeforeTransition is the same for status transitions.
	BeforeTransition func(a *auction.Auction)
}

func New() *Store {
	s := &Store{
		auctions: make(map[uuid.UUID]auction.Auction),
		locks:    make(map[uuid.UUID]*tx),
	}
	s.released = sync.NewCond(&s.mu)
	return s
}

// Put seeds a committed auction.
func (s *Store) Put(a *auction.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[a.ID()] = *a
}

// PutBid seeds a committed bid without touching the auction row.
func (s *Store) PutBid(b *auction.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids = append(s.bids, b)
}

// ForceConflicts makes the next n ApplyBid calls fail their condition.
func (s *Store) ForceConflicts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forcedConflicts = n
}

// FailApplyBid makes every following ApplyBid return err.
func (s *Store) FailApplyBid(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyErr = err
}

func (s *Store) Auction(id uuid.UUID) (*auction.Auction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.auctions[id]
	if !ok {
		return nil, false
	}
	return &a, true
}

// Bids returns the committed bids of one auction in insertion order.
func (s *Store) Bids(auctionID uuid.UUID) []*auction.Bid {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*auction.Bid
	for _, b := range s.bids {
		if b.AuctionID() == auctionID {
			out = append(out, b)
		}
	}
	return out
}

// Accesses counts every read or write that reached the store.
func (s *Store) Accesses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accesses
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// ------------------------------------------------------------
// shared.UnitOfWork
// ------------------------------------------------------------

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("begin", err)
	}
	t := &tx{store: s, auctions: make(map[uuid.UUID]auction.Auction)}
	if err := fn(ctx, t); err != nil {
		s.release(t)
		return err
	}
	s.commit(t)
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return reads{store: s}
}

func (s *Store) commit(t *tx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range t.auctions {
		s.auctions[id] = a
	}
	s.bids = append(s.bids, t.bids...)
	s.unlockLocked(t)
	s.commits++
}

func (s *Store) release(t *tx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlockLocked(t)
}

func (s *Store) unlockLocked(t *tx) {
	for id, owner := range s.locks {
		if owner == t {
			delete(s.locks, id)
		}
	}
	s.released.Broadcast()
}

// lockLocked waits until no other transaction holds the row and takes it for t.
// The caller holds s.mu.
func (s *Store) lockLocked(t *tx, id uuid.UUID) {
	for {
		owner, ok := s.locks[id]
		if !ok || owner == t {
			break
		}
		s.released.Wait()
	}
	s.locks[id] = t
}

// ------------------------------------------------------------
// transaction
// ------------------------------------------------------------

type tx struct {
	store    *Store
	auctions map[uuid.UUID]auction.Auction
	bids     []*auction.Bid
}

func (t *tx) Auctions() shared.AuctionRepository { return auctionRepo{t} }
func (t *tx) Bids() shared.BidRepository         { return bidRepo{t} }
func (t *tx) Reads() shared.CommandReads         { return reads{store: t.store, tx: t} }

type auctionRepo struct{ t *tx }

func (r auctionRepo) Create(ctx context.Context, a *auction.Auction) error {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++
	if _, ok := s.auctions[a.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "auction already exists")
	}
	s.lockLocked(r.t, a.ID())
	r.t.auctions[a.ID()] = *a
	return nil
}

func (r auctionRepo) ApplyBid(ctx context.Context, next *auction.Auction, expectedPrice auction.Money) (*auction.Auction, error) {
	s := r.t.store
	if hook := s.BeforeApplyBid; hook != nil {
		hook(next)
	}
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("apply bid", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++
	if s.applyErr != nil {
		return nil, infra.WrapRepoErr("apply bid", s.applyErr)
	}
	if s.forcedConflicts > 0 {
		s.forcedConflicts--
		return nil, infra.NewRepoErr(infra.KindConflict, "auction changed since it was read")
	}

	s.lockLocked(r.t, next.ID())
	stored, ok := r.t.current(next.ID())
	if !ok || !stored.CurrentPrice().Equal(expectedPrice) ||
		!stored.IsBiddableAt(next.UpdatedAt()) {
		return nil, infra.NewRepoErr(infra.KindConflict, "auction changed since it was read")
	}

	next = next.WithUpdatedAt(stored.NextWriteTime(next.UpdatedAt()))
	r.t.auctions[next.ID()] = *next
	out := *next
	return &out, nil
}

func (r auctionRepo) Transition(ctx context.Context, a *auction.Auction, expectedStatus auction.Status, expectedBidCount int) error {
	s := r.t.store
	if hook := s.BeforeTransition; hook != nil {
		hook(a)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++

	s.lockLocked(r.t, a.ID())
	stored, ok := r.t.current(a.ID())
	if !ok || stored.Status() != expectedStatus ||
		stored.BidCount() != expectedBidCount {
		return infra.NewRepoErr(infra.KindConflict, "auction changed since it was read")
	}
	r.t.auctions[a.ID()] = *a
	return nil
}

// current returns the row as this transaction sees it; the caller holds s.mu.
func (t *tx) current(id uuid.UUID) (auction.Auction, bool) {
	if a, ok := t.auctions[id]; ok {
		return a, true
	}
	a, ok := t.store.auctions[id]
	return a, ok
}

type bidRepo struct{ t *tx }

func (r bidRepo) Create(ctx context.Context, b *auction.Bid) error {
	s := r.t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++
	if _, ok := r.t.current(b.AuctionID()); !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "auction does not exist")
	}
	r.t.bids = append(r.t.bids, b)
	return nil
}

// ------------------------------------------------------------
// reads
// ------------------------------------------------------------

type reads struct {
	store *Store
	tx    *tx
}

func (r reads) AuctionByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++

	var (
		a  auction.Auction
		ok bool
	)
	if r.tx != nil {
		a, ok = r.tx.current(id)
	} else {
		a, ok = s.auctions[id]
	}
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "auction not found")
	}
	return &a, nil
}

func (r reads) HighestBid(ctx context.Context, auctionID uuid.UUID) (*auction.Bid, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++

	candidates := append([]*auction.Bid(nil), s.bids...)
	if r.tx != nil {
		candidates = append(candidates, r.tx.bids...)
	}
	var best *auction.Bid
	for _, b := range candidates {
		if b.AuctionID() != auctionID {
			continue
		}
		if best == nil || b.Amount().GreaterThan(best.Amount()) ||
			(b.Amount().Equal(best.Amount()) && b.CreatedAt().Before(best.CreatedAt())) {
			best = b
		}
	}
	return best, nil
}

func (r reads) EndedActiveAuctions(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++

	var out []*auction.Auction
	for _, a := range s.auctions {
		if a.Status() == auction.StatusActive && a.EndTime().Before(now) {
			c := a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EndTime().Equal(out[j].EndTime()) {
			return out[i].ID().String() < out[j].ID().String()
		}
		return out[i].EndTime().Before(out[j].EndTime())
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
