package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Profile records elapsed wall time per pipeline stage of a simulation
// run (expand, fetch, align, simulate, metrics). Not thread safe.
type Profile struct {
	Stages  []Stage `json:"stages"`
	TotalMs int64   `json:"totalMs"`

	startTs time.Time
	lastTs  time.Time
}

type Stage struct {
	Name      string `json:"name"`
	ElapsedMs int64  `json:"elapsedMs"`
}

const ContextProfileKey = "simulationProfile"

func NewProfile() *Profile {
	now := time.Now()
	return &Profile{
		startTs: now,
		lastTs:  now,
	}
}

// Mark closes the stage that ran since the previous Mark (or since
// construction) and records it under the given name.
func (p *Profile) Mark(name string) {
	now := time.Now()
	p.Stages = append(p.Stages, Stage{
		Name:      name,
		ElapsedMs: now.Sub(p.lastTs).Milliseconds(),
	})
	p.lastTs = now
}

func (p *Profile) End() {
	p.TotalMs = time.Since(p.startTs).Milliseconds()
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	return json.Marshal(p)
}

// ProfileFromContext returns the profile stashed on the request context,
// or a fresh throwaway one so callers never need a nil check.
func ProfileFromContext(ctx context.Context) *Profile {
	if p, ok := ctx.Value(ContextProfileKey).(*Profile); ok {
		return p
	}
	return NewProfile()
}
