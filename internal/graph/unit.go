package graph

// UnitKind classifies how a learning unit entered the curriculum.
type UnitKind string

const (
	KindCore      UnitKind = "core"      // Produced by initial plan generation
	KindRemedial  UnitKind = "remedial"  // Spliced in by the remediation planner
	KindExtension UnitKind = "extension" // Optional enrichment beyond the core path
)

// LearningUnit is one node of the learning forest.
// Units are created by plan generation or the remediation planner and are
// never deleted; reachability changes only through lock state.
type LearningUnit struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	ParentID          string   `json:"parentId,omitempty"` // empty = root
	Locked            bool     `json:"locked"`
	Difficulty        float64  `json:"difficulty"` // 0.0 - 1.0
	Kind              UnitKind `json:"kind"`
	SourceRefs        []string `json:"sourceRefs,omitempty"`
	LearningObjective string   `json:"learningObjective,omitempty"`
	TargetSkill       string   `json:"targetSkill,omitempty"`
}

// IsRoot reports whether the unit has no parent.
func (u LearningUnit) IsRoot() bool {
	return u.ParentID == ""
}

// ProgressStatus is the lifecycle state of a unit's progress record.
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
	StatusFailed     ProgressStatus = "failed"
)

// UnitProgress tracks a learner's standing on a single unit.
// Attempts is monotonic non-decreasing for the life of the session.
type UnitProgress struct {
	Status      ProgressStatus `json:"status"`
	Attempts    int            `json:"attempts"`
	Proficiency float64        `json:"proficiency"` // 0.0 - 1.0
}

// NewProgress returns a fresh not-started progress record.
func NewProgress() *UnitProgress {
	return &UnitProgress{Status: StatusNotStarted}
}
