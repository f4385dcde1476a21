// Package remediation decides when and what remedial unit to splice into
// the learning forest after repeated failure.
package remediation

import (
	"context"
	"fmt"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/weakness"
)

// UnitSynthesizer is the slice of the Oracle the planner needs.
type UnitSynthesizer interface {
	GenerateRemedialUnit(ctx context.Context, anchor graph.LearningUnit, weaknesses []weakness.Weakness, material content.SourceMaterial) (*graph.LearningUnit, error)
}

var _ UnitSynthesizer = (*oracle.Service)(nil)

// Planner creates remedial units for failed topics. Remediation is
// explicit: the learner asks for it, the planner never fires on its own.
type Planner struct {
	synth UnitSynthesizer
}

// NewPlanner creates a Planner backed by the given synthesizer.
func NewPlanner(synth UnitSynthesizer) *Planner {
	return &Planner{synth: synth}
}

// Input carries the state the planner reads.
type Input struct {
	AnchorID string

	// LastFailedAttempt holds the weaknesses produced by the most recent
	// failed grading pass for the anchor unit. May be empty.
	LastFailedAttempt []weakness.Weakness

	// Ledger is the session's full weakness history, used when the last
	// attempt produced no weaknesses of its own.
	Ledger *weakness.Ledger

	Material content.SourceMaterial
}

// Plan synthesizes a remedial unit for a failed topic and splices it
// into the forest as a child of the anchor. On any failure the forest is
// left unmodified; there is no partial insertion to roll back.
func (p *Planner) Plan(ctx context.Context, forest *graph.Forest, progress map[string]*graph.UnitProgress, in Input) (*graph.LearningUnit, error) {
	anchor, ok := forest.Get(in.AnchorID)
	if !ok {
		return nil, fmt.Errorf("anchor unit not found: %q", in.AnchorID)
	}

	unit, err := p.Synthesize(ctx, anchor, progress[in.AnchorID], in)
	if err != nil {
		return nil, err
	}

	if err := forest.InsertRemedial(*unit, in.AnchorID); err != nil {
		return nil, err
	}

	inserted, _ := forest.Get(unit.ID)
	return &inserted, nil
}

// Synthesize validates eligibility, picks the weakness set and asks the
// Oracle for a remedial unit without touching any forest. Callers that
// serialize graph mutation elsewhere splice the unit in themselves.
func (p *Planner) Synthesize(ctx context.Context, anchor graph.LearningUnit, prog *graph.UnitProgress, in Input) (*graph.LearningUnit, error) {
	if prog == nil || prog.Status != graph.StatusFailed {
		return nil, fmt.Errorf("remediation requires a failed unit, %q is %s", anchor.Title, statusOf(prog))
	}

	weaknesses := p.selectWeaknesses(in)
	if len(weaknesses) == 0 {
		return nil, fmt.Errorf("no recorded weaknesses to remediate for %q", anchor.Title)
	}

	unit, err := p.synth.GenerateRemedialUnit(ctx, anchor, weaknesses, in.Material)
	if err != nil {
		return nil, fmt.Errorf("remedial synthesis for %q: %w", anchor.Title, err)
	}
	return unit, nil
}

// selectWeaknesses prefers the most recent failed attempt's weaknesses;
// the full ledger is the fallback.
func (p *Planner) selectWeaknesses(in Input) []weakness.Weakness {
	if len(in.LastFailedAttempt) > 0 {
		return in.LastFailedAttempt
	}
	if in.Ledger != nil {
		return in.Ledger.Entries()
	}
	return nil
}

func statusOf(p *graph.UnitProgress) graph.ProgressStatus {
	if p == nil {
		return graph.StatusNotStarted
	}
	return p.Status
}
