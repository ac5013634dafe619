package geo

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrStaleLookup marks a reverse lookup answered after a newer one
	// started; its result must be discarded.
	ErrStaleLookup = errors.New("stale reverse lookup")

	// ErrNoCandidate means Confirm was called before any usable point
	// was under the pin.
	ErrNoCandidate = errors.New("no location selected")
)

// Phase is the picker's lifecycle stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBrowsing
	PhaseConfirmed
)

// Picker drives one user's map selection flow: browsing bumps a
// generation counter per lookup so a slow response from an earlier map
// position can never overwrite a newer one.
type Picker struct {
	client *Client

	mu        sync.Mutex
	phase     Phase
	gen       uint64
	candidate *Location
	confirmed *Location
}

func NewPicker(client *Client) *Picker {
	return &Picker{client: client}
}

func (p *Picker) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// MoveEnd resolves the point now under the pin. An unusable point clears
// the candidate; a lookup that loses the race to a newer MoveEnd returns
// ErrStaleLookup and changes nothing. Network failures also change
// nothing, so the previous candidate survives a transient error.
func (p *Picker) MoveEnd(ctx context.Context, lat, lng float64) (ReverseResult, error) {
	p.mu.Lock()
	p.phase = PhaseBrowsing
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	res, err := p.client.Reverse(ctx, lat, lng)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return ReverseResult{}, ErrStaleLookup
	}
	if err != nil {
		return ReverseResult{}, err
	}
	if res.Usable {
		p.candidate = res.Location
	} else {
		p.candidate = nil
	}
	return res, nil
}

// Confirm promotes the current candidate to the confirmed selection.
func (p *Picker) Confirm() (*Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.candidate == nil {
		return nil, ErrNoCandidate
	}
	p.confirmed = p.candidate
	p.phase = PhaseConfirmed
	return p.confirmed, nil
}

// Select confirms a location directly, the suggestion-pick path.
func (p *Picker) Select(loc Location) *Location {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.candidate = &loc
	p.confirmed = &loc
	p.phase = PhaseConfirmed
	return p.confirmed
}

// Dismiss abandons browsing. A previously confirmed selection survives.
func (p *Picker) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phase = PhaseIdle
	p.candidate = nil
	p.gen++
}

// Confirmed returns the last confirmed selection, nil when none.
func (p *Picker) Confirmed() *Location {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.confirmed
}
