// Package viewer holds the state machine behind the scenario detail pane.
//
// A Detail moves through Idle -> Loading -> Ready|Error for each selection.
// All mutation goes through Select and the Apply*/Begin*/End* functions,
// which are fed by the completions of asynchronous requests. Every request
// carries a Token naming the selection generation it was issued for and its
// issue order; completions for a retired generation are discarded, and a
// state snapshot never replaces one that was issued later.
package viewer

import (
	"context"
	"time"

	"github.com/Iron-Ham/playground/internal/api"
)

// DefaultPollInterval is the period of the state poll loop.
const DefaultPollInterval = 2 * time.Second

// LoadErrorMessage is shown when the initial detail+state load fails.
const LoadErrorMessage = "Could not load scenario data."

// Phase is the lifecycle state of the detail pane.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Token identifies one request issued on behalf of a selection.
type Token struct {
	Gen uint64 // selection generation
	Seq uint64 // issue order within the generation, starting at 1
}

// Detail is the state of the detail pane. The zero value is Idle. It is not
// safe for concurrent use; the owning event loop serializes access.
type Detail struct {
	id  string
	gen uint64
	seq uint64

	// appliedSeq is the Seq of the request whose snapshot is current.
	appliedSeq uint64

	phase         Phase
	scenario      *api.Scenario
	snapshot      api.Snapshot
	updatedAt     time.Time
	actionPending bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewDetail returns an Idle Detail.
func NewDetail() *Detail {
	return &Detail{}
}

// Select makes id the active scenario. It retires the previous generation,
// canceling its in-flight requests, and returns the token for the initial
// load. Selecting the empty id or the already-active id is a no-op and
// returns false.
func (d *Detail) Select(id string) (Token, bool) {
	if id == "" || id == d.id {
		return Token{}, false
	}
	if d.cancel != nil {
		d.cancel()
	}

	d.id = id
	d.gen++
	d.seq = 0
	d.appliedSeq = 0
	d.phase = PhaseLoading
	d.scenario = nil
	d.snapshot = nil
	d.updatedAt = time.Time{}
	d.actionPending = false
	d.ctx, d.cancel = context.WithCancel(context.Background())

	return d.Issue(), true
}

// Issue returns a fresh token for the current generation.
func (d *Detail) Issue() Token {
	d.seq++
	return Token{Gen: d.gen, Seq: d.seq}
}

// Current reports whether tok belongs to the active generation.
func (d *Detail) Current(tok Token) bool {
	return d.id != "" && tok.Gen == d.gen
}

// CurrentGen reports whether gen is the active generation.
func (d *Detail) CurrentGen(gen uint64) bool {
	return d.id != "" && gen == d.gen
}

// Context is canceled when the current generation is retired. Requests for
// the active selection should be issued with it.
func (d *Detail) Context() context.Context {
	if d.ctx == nil {
		return context.Background()
	}
	return d.ctx
}

// Close cancels in-flight requests. The Detail keeps its data.
func (d *Detail) Close() {
	if d.cancel != nil {
		d.cancel()
	}
}

// ApplyLoad records the outcome of the initial load. Both halves must have
// succeeded; on error the pane moves to Error and the partial results are
// dropped. It reports whether the completion was applied.
func (d *Detail) ApplyLoad(tok Token, sc *api.Scenario, snap api.Snapshot, err error, at time.Time) bool {
	if !d.Current(tok) {
		return false
	}
	if err != nil || sc == nil {
		d.phase = PhaseError
		d.scenario = nil
		return true
	}
	d.scenario = sc
	d.phase = PhaseReady
	d.applySnapshot(tok, snap, at)
	return true
}

// ApplyPoll records a polled snapshot. Failed polls and snapshots older than
// the current one are ignored. It reports whether the snapshot was applied.
func (d *Detail) ApplyPoll(tok Token, snap api.Snapshot, err error, at time.Time) bool {
	if !d.Current(tok) || err != nil {
		return false
	}
	return d.applySnapshot(tok, snap, at)
}

func (d *Detail) applySnapshot(tok Token, snap api.Snapshot, at time.Time) bool {
	if tok.Seq <= d.appliedSeq {
		return false
	}
	if snap == nil {
		snap = api.Snapshot{}
	}
	d.snapshot = snap
	d.appliedSeq = tok.Seq
	d.updatedAt = at
	return true
}

// BeginAction disables the action bar and returns the token for the
// dispatch. It fails while another action is pending or the pane is not
// Ready.
func (d *Detail) BeginAction() (Token, bool) {
	if d.phase != PhaseReady || d.actionPending {
		return Token{}, false
	}
	d.actionPending = true
	return d.Issue(), true
}

// EndAction re-enables the action bar once a dispatch settles. Completions
// from a retired generation are ignored.
func (d *Detail) EndAction(tok Token) bool {
	if !d.Current(tok) {
		return false
	}
	d.actionPending = false
	return true
}

// ID returns the active scenario id, or "" when Idle.
func (d *Detail) ID() string { return d.id }

// Gen returns the active generation.
func (d *Detail) Gen() uint64 { return d.gen }

// Phase returns the lifecycle state.
func (d *Detail) Phase() Phase { return d.phase }

// Scenario returns the loaded scenario, or nil before Ready.
func (d *Detail) Scenario() *api.Scenario { return d.scenario }

// Snapshot returns the most recently applied snapshot, or nil.
func (d *Detail) Snapshot() api.Snapshot { return d.snapshot }

// UpdatedAt is when the current snapshot was applied.
func (d *Detail) UpdatedAt() time.Time { return d.updatedAt }

// ActionPending reports whether the action bar is disabled.
func (d *Detail) ActionPending() bool { return d.actionPending }

// ErrorMessage returns the user-facing message in the Error phase.
func (d *Detail) ErrorMessage() string {
	if d.phase != PhaseError {
		return ""
	}
	return LoadErrorMessage
}
