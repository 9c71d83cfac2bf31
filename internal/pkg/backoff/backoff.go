package backoff

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Jitter returns a value in [0, n). n <= 0 must return 0.
type Jitter func(n int64) int64

// Exponential doubles Base per attempt, caps at Max and adds up to 20% jitter.
type Exponential struct {
	Base   time.Duration
	Max    time.Duration
	Jitter Jitter
}

func NewExponential(base, maxWait time.Duration) *Exponential {
	return &Exponential{
		Base:   base,
		Max:    maxWait,
		Jitter: CryptoJitter,
	}
}

// Delay returns the wait before retry number attempt (0-based).
func (e *Exponential) Delay(attempt int) time.Duration {
	if e.Base <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	}
	// keep the shift from overflowing on absurd attempt counts
	if attempt > 30 {
		attempt = 30
	}

	wait := time.Duration(1<<attempt) * e.Base
	if e.Max > 0 && wait > e.Max {
		wait = e.Max
	}

	jitter := e.Jitter
	if jitter == nil {
		jitter = CryptoJitter
	}
	return wait + time.Duration(jitter(int64(wait/5)))
}

func NoJitter(int64) int64 { return 0 }

func CryptoJitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative int64 above
	return int64(uval) % n
}
