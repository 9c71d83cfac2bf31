package auction

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

var (
	ErrInvalidTitle       = errors.New("title must be 1 to 200 characters")
	ErrInvalidDescription = errors.New("description must be at most 2000 characters")
	ErrReserveBelowStart  = errors.New("reserve price must not be below start price")
	ErrInvalidTimeWindow  = errors.New("start time must be before end time")
	ErrWindowInPast       = errors.New("end time must be in the future")
	ErrNotActive          = errors.New("auction is not accepting bids")
	ErrBidTooLow          = errors.New("bid must exceed current price")
	ErrOwnerBid           = errors.New("owner cannot bid on own auction")
	ErrNotOwner           = errors.New("only the owner can modify the auction")
	ErrInvalidTransition  = errors.New("invalid auction status transition")
)

type Auction struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	title        string
	description  string
	startPrice   Money
	reservePrice *Money
	currentPrice Money
	status       Status
	bidCount     int
	startTime    time.Time
	endTime      time.Time
	winnerID     *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

type NewAuctionParams struct {
	OwnerID      uuid.UUID
	Title        string
	Description  string
	StartPrice   Money
	ReservePrice *Money
	StartTime    time.Time
	EndTime      time.Time
}

// NewAuction creates a pending auction whose current price starts at the start price.
func NewAuction(p NewAuctionParams, now time.Time) (*Auction, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return nil, ErrInvalidTitle
	}
	description := strings.TrimSpace(p.Description)
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, ErrInvalidDescription
	}
	if p.StartPrice.IsZero() {
		return nil, ErrNonPositiveAmount
	}
	if p.ReservePrice != nil && p.ReservePrice.LessThan(p.StartPrice) {
		return nil, ErrReserveBelowStart
	}
	if !p.StartTime.Before(p.EndTime) {
		return nil, ErrInvalidTimeWindow
	}
	if !p.EndTime.After(now) {
		return nil, ErrWindowInPast
	}

	return &Auction{
		id:           uuid.New(),
		ownerID:      p.OwnerID,
		title:        title,
		description:  description,
		startPrice:   p.StartPrice,
		reservePrice: p.ReservePrice,
		currentPrice: p.StartPrice,
		status:       StatusPending,
		startTime:    p.StartTime,
		endTime:      p.EndTime,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type ReconstructParams struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	StartPrice   Money
	ReservePrice *Money
	CurrentPrice Money
	Status       Status
	BidCount     int
	StartTime    time.Time
	EndTime      time.Time
	WinnerID     *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(p ReconstructParams) *Auction {
	return &Auction{
		id:           p.ID,
		ownerID:      p.OwnerID,
		title:        p.Title,
		description:  p.Description,
		startPrice:   p.StartPrice,
		reservePrice: p.ReservePrice,
		currentPrice: p.CurrentPrice,
		status:       p.Status,
		bidCount:     p.BidCount,
		startTime:    p.StartTime,
		endTime:      p.EndTime,
		winnerID:     p.WinnerID,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

// IsBiddableAt reports whether the auction is active and now lies in [startTime, endTime].
func (a *Auction) IsBiddableAt(now time.Time) bool {
	if a.status != StatusActive {
		return false
	}
	return !now.Before(a.startTime) && !now.After(a.endTime)
}

// CheckBid runs the eligibility and price rules for a bid without mutating the auction.
func (a *Auction) CheckBid(bidderID uuid.UUID, amount Money, now time.Time, rejectOwner bool) error {
	if !a.IsBiddableAt(now) {
		return ErrNotActive
	}
	if rejectOwner && bidderID == a.ownerID {
		return ErrOwnerBid
	}
	if !amount.GreaterThan(a.currentPrice) {
		return ErrBidTooLow
	}
	return nil
}

// NextWriteTime is the timestamp a write made at now gets on this row: never
// earlier than one microsecond after the row's last write, so stamps on one
// auction follow commit order even when writers' clocks disagree.
func (a *Auction) NextWriteTime(now time.Time) time.Time {
	if floor := a.updatedAt.Add(time.Microsecond); now.Before(floor) {
		return floor
	}
	return now
}

// WithUpdatedAt returns a copy stamped at t.
func (a *Auction) WithUpdatedAt(t time.Time) *Auction {
	next := *a
	next.updatedAt = t
	return &next
}

// PlaceBid returns the bid and the auction as it looks after accepting it.
// The receiver is left untouched so the caller can still condition the write on it.
func (a *Auction) PlaceBid(bidderID uuid.UUID, amount Money, now time.Time, rejectOwner bool) (*Bid, *Auction, error) {
	if err := a.CheckBid(bidderID, amount, now, rejectOwner); err != nil {
		return nil, nil, err
	}
	next := *a
	next.currentPrice = amount
	next.bidCount++
	next.updatedAt = now
	return NewBid(a.id, bidderID, amount, now), &next, nil
}

func (a *Auction) Activate(by uuid.UUID, now time.Time) error {
	if by != a.ownerID {
		return ErrNotOwner
	}
	if a.status != StatusPending {
		return ErrInvalidTransition
	}
	if now.After(a.endTime) {
		return ErrWindowInPast
	}
	a.status = StatusActive
	a.updatedAt = now
	return nil
}

// Cancel is allowed while pending, or while active and no bid has been accepted.
func (a *Auction) Cancel(by uuid.UUID, now time.Time) error {
	if by != a.ownerID {
		return ErrNotOwner
	}
	switch {
	case a.status == StatusPending:
	case a.status == StatusActive && a.bidCount == 0:
	default:
		return ErrInvalidTransition
	}
	a.status = StatusCancelled
	a.updatedAt = now
	return nil
}

func (a *Auction) HasEndedAt(now time.Time) bool {
	return now.After(a.endTime)
}

func (a *Auction) ReserveMet() bool {
	if a.bidCount == 0 {
		return false
	}
	if a.reservePrice == nil {
		return true
	}
	return !a.currentPrice.LessThan(*a.reservePrice)
}

// Complete closes an ended auction. highest is the top bid or nil when there were none;
// the winner is only recorded when the reserve is met.
func (a *Auction) Complete(highest *Bid, now time.Time) error {
	if a.status != StatusActive {
		return ErrInvalidTransition
	}
	if !a.HasEndedAt(now) {
		return ErrInvalidTransition
	}
	a.status = StatusCompleted
	a.updatedAt = now
	if highest != nil && a.ReserveMet() {
		winner := highest.UserID()
		a.winnerID = &winner
	}
	return nil
}

func (a *Auction) ID() uuid.UUID        { return a.id }
func (a *Auction) OwnerID() uuid.UUID   { return a.ownerID }
func (a *Auction) Title() string        { return a.title }
func (a *Auction) Description() string  { return a.description }
func (a *Auction) StartPrice() Money    { return a.startPrice }
func (a *Auction) ReservePrice() *Money { return a.reservePrice }
func (a *Auction) CurrentPrice() Money  { return a.currentPrice }
func (a *Auction) Status() Status       { return a.status }
func (a *Auction) BidCount() int        { return a.bidCount }
func (a *Auction) StartTime() time.Time { return a.startTime }
func (a *Auction) EndTime() time.Time   { return a.endTime }
func (a *Auction) WinnerID() *uuid.UUID { return a.winnerID }
func (a *Auction) CreatedAt() time.Time { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time { return a.updatedAt }
