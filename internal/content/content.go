package content

// SectionKind identifies one of the fixed long-form content sections.
// Sections stream in this order but are stored in arrival order.
type SectionKind string

const (
	SectionIntroduction SectionKind = "introduction"
	SectionTheory       SectionKind = "theory"
	SectionExample      SectionKind = "example"
	SectionConnection   SectionKind = "connection"
	SectionInteractive  SectionKind = "interactive"
	SectionConclusion   SectionKind = "conclusion"
)

// Section is one block of a unit's long-form content.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Title string      `json:"title,omitempty"`
	Body  string      `json:"body"`
}

// Content is the finalized long-form content for a single unit.
type Content struct {
	UnitID   string    `json:"unitId"`
	Sections []Section `json:"sections"`
}

// Text concatenates all section bodies in stored order.
func (c Content) Text() string {
	var out string
	for _, s := range c.Sections {
		out += s.Body
	}
	return out
}

// SourceMaterial is the learner-provided material a session is built from.
type SourceMaterial struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Preferences capture how the learner wants material presented.
type Preferences struct {
	Level         string `json:"level"`         // beginner, intermediate, advanced
	Tone          string `json:"tone"`          // plain, playful, formal
	QuestionCount int    `json:"questionCount"` // questions per quiz
	Language      string `json:"language"`
}

// DefaultPreferences returns the preferences used when none are stored.
func DefaultPreferences() Preferences {
	return Preferences{
		Level:         "intermediate",
		Tone:          "plain",
		QuestionCount: 5,
		Language:      "en",
	}
}
