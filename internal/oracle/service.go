package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/weakness"
)

// ServiceConfig tunes generation per operation.
type ServiceConfig struct {
	PlanMaxTokens    int
	ContentMaxTokens int
	QuizMaxTokens    int
	GradingMaxTokens int
	Temperature      float64
}

// DefaultServiceConfig returns the default generation settings.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		PlanMaxTokens:    4096,
		ContentMaxTokens: 8192,
		QuizMaxTokens:    4096,
		GradingMaxTokens: 2048,
		Temperature:      0.7,
	}
}

// Service is the Knowledge Oracle: it turns a provider's structured JSON
// responses into plans, content, quizzes and grades. Generation methods
// block; callers that need them off the hot path run them from a
// goroutine. Event callbacks fire in emission order before the method
// returns, so downstream buffers see chunks the way a streaming backend
// would deliver them.
type Service struct {
	provider Provider
	cfg      ServiceConfig
}

// NewService creates an Oracle service on top of a provider.
func NewService(provider Provider, cfg ServiceConfig) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Plan is the finalized result of plan generation.
type Plan struct {
	Units         []graph.LearningUnit
	SuggestedPath []string // unit IDs in recommended study order
	PreAssessment *quiz.Quiz
}

// PlanEvents receives plan generation chunks. Nil callbacks are skipped.
type PlanEvents struct {
	UnitsReady            func(units []graph.LearningUnit, suggestedPath []string)
	PreAssessmentQuestion func(q quiz.Question)
}

// ContentEvents receives unit content sections as they are produced.
type ContentEvents struct {
	Section func(s content.Section)
}

// QuizEvents receives quiz questions as they are produced.
type QuizEvents struct {
	Question func(q quiz.Question)
}

// Assessment is the analysis of a learner's pre-assessment answers.
type Assessment struct {
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	RecommendedLevel string   `json:"recommended_level"`
}

type planOutput struct {
	Units         []planUnitOutput `json:"units"`
	SuggestedPath []int            `json:"suggested_path"`
	PreAssessment []questionOutput `json:"pre_assessment"`
}

type planUnitOutput struct {
	Title             string  `json:"title"`
	ParentIndex       int     `json:"parent_index"`
	Difficulty        float64 `json:"difficulty"`
	LearningObjective string  `json:"learning_objective"`
	TargetSkill       string  `json:"target_skill"`
}

type questionOutput struct {
	Text        string   `json:"text"`
	Kind        string   `json:"kind"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Points      float64  `json:"points"`
	Difficulty  float64  `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// GeneratePlan synthesizes the unit forest, suggested study order and
// pre-assessment quiz from the learner's source material. Events fire as
// the parsed payload is decomposed: first UnitsReady, then one
// PreAssessmentQuestion per question.
func (s *Service) GeneratePlan(ctx context.Context, material content.SourceMaterial, prefs content.Preferences, ev PlanEvents) (*Plan, error) {
	ctx = WithPurpose(ctx, "plan")

	resp, err := s.provider.Generate(ctx, Request{
		System:      planSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildPlanUserMessage(material, prefs)}},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.PlanMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("parse plan response: %w", err)}
	}
	if len(out.Units) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("plan contains no units")}
	}

	units := make([]graph.LearningUnit, len(out.Units))
	rootSeen := false
	for i, u := range out.Units {
		if u.ParentIndex >= len(out.Units) || u.ParentIndex == i {
			return nil, &ErrInvalidResponse{Err: fmt.Errorf("unit %d has invalid parent_index %d", i, u.ParentIndex)}
		}
		units[i] = graph.LearningUnit{
			ID:                uuid.NewString(),
			Title:             u.Title,
			Locked:            true,
			Difficulty:        clamp01(u.Difficulty),
			Kind:              graph.KindCore,
			SourceRefs:        []string{material.Title},
			LearningObjective: u.LearningObjective,
			TargetSkill:       u.TargetSkill,
		}
	}
	for i, u := range out.Units {
		if u.ParentIndex >= 0 {
			units[i].ParentID = units[u.ParentIndex].ID
		} else if !rootSeen {
			// Exactly one root starts unlocked.
			units[i].Locked = false
			rootSeen = true
		}
	}
	if !rootSeen {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("plan contains no root unit")}
	}

	path := make([]string, 0, len(out.SuggestedPath))
	for _, idx := range out.SuggestedPath {
		if idx < 0 || idx >= len(units) {
			return nil, &ErrInvalidResponse{Err: fmt.Errorf("suggested_path index %d out of range", idx)}
		}
		path = append(path, units[idx].ID)
	}

	if ev.UnitsReady != nil {
		ev.UnitsReady(units, path)
	}

	pre := &quiz.Quiz{
		ID:     uuid.NewString(),
		UnitID: quiz.PreAssessmentUnitID,
		Title:  "Pre-assessment: " + material.Title,
	}
	for _, q := range out.PreAssessment {
		question := questionFromOutput(q)
		pre.Questions = append(pre.Questions, question)
		if ev.PreAssessmentQuestion != nil {
			ev.PreAssessmentQuestion(question)
		}
	}

	return &Plan{Units: units, SuggestedPath: path, PreAssessment: pre}, nil
}

type contentOutput struct {
	Sections []sectionOutput `json:"sections"`
}

type sectionOutput struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GenerateUnitContent synthesizes a unit's long-form content. Sections
// are emitted in order through ev before the finalized content returns.
func (s *Service) GenerateUnitContent(ctx context.Context, in ContentInput, ev ContentEvents) (*content.Content, error) {
	ctx = WithPurpose(ctx, "content")

	resp, err := s.provider.Generate(ctx, Request{
		System:      contentSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildContentUserMessage(in)}},
		Schema:      ContentSchema,
		MaxTokens:   s.cfg.ContentMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("content generation for %q: %w", in.Unit.Title, err)
	}

	var out contentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("parse content response: %w", err)}
	}
	if len(out.Sections) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("content contains no sections")}
	}

	result := &content.Content{UnitID: in.Unit.ID}
	for _, sec := range out.Sections {
		section := content.Section{
			Kind:  content.SectionKind(sec.Kind),
			Title: sec.Title,
			Body:  sec.Body,
		}
		result.Sections = append(result.Sections, section)
		if ev.Section != nil {
			ev.Section(section)
		}
	}

	return result, nil
}

type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

// GenerateQuiz synthesizes a mastery quiz for one unit from its teaching
// content. Questions are emitted in order through ev.
func (s *Service) GenerateQuiz(ctx context.Context, unit graph.LearningUnit, unitContent content.Content, prefs content.Preferences, ev QuizEvents) (*quiz.Quiz, error) {
	ctx = WithPurpose(ctx, "quiz")

	return s.generateQuiz(ctx, Request{
		System:      quizSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildQuizUserMessage(unit, unitContent, prefs)}},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	}, unit.ID, "Quiz: "+unit.Title, ev)
}

// GenerateFinalExam synthesizes a cumulative exam over all completed
// units.
func (s *Service) GenerateFinalExam(ctx context.Context, units []graph.LearningUnit, material content.SourceMaterial, prefs content.Preferences, ev QuizEvents) (*quiz.Quiz, error) {
	ctx = WithPurpose(ctx, "final-exam")

	return s.generateQuiz(ctx, Request{
		System:      finalExamSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildFinalExamUserMessage(units, material, prefs)}},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	}, quiz.FinalExamUnitID, "Final exam: "+material.Title, ev)
}

func (s *Service) generateQuiz(ctx context.Context, req Request, unitID, title string, ev QuizEvents) (*quiz.Quiz, error) {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("parse quiz response: %w", err)}
	}
	if len(out.Questions) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("quiz contains no questions")}
	}

	result := &quiz.Quiz{
		ID:     uuid.NewString(),
		UnitID: unitID,
		Title:  title,
	}
	for _, q := range out.Questions {
		question := questionFromOutput(q)
		result.Questions = append(result.Questions, question)
		if ev.Question != nil {
			ev.Question(question)
		}
	}

	return result, nil
}

type gradingOutput struct {
	Results []gradedResultOutput `json:"results"`
}

type gradedResultOutput struct {
	QuestionIndex int     `json:"question_index"`
	IsCorrect     bool    `json:"is_correct"`
	Score         float64 `json:"score"`
	Analysis      string  `json:"analysis"`
}

// GradeQuiz grades a learner's answers. Results come back in question
// order, one per graded question. Non-streaming.
func (s *Service) GradeQuiz(ctx context.Context, q *quiz.Quiz, answers []quiz.Answer, material content.SourceMaterial) ([]quiz.GradedResult, error) {
	ctx = WithPurpose(ctx, "grading")

	resp, err := s.provider.Generate(ctx, Request{
		System:    gradingSystemPrompt,
		Messages:  []Message{{Role: RoleUser, Content: buildGradingUserMessage(q, answers, material)}},
		Schema:    GradingSchema,
		MaxTokens: s.cfg.GradingMaxTokens,
		// Grading wants determinism.
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz grading: %w", err)
	}

	var out gradingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("parse grading response: %w", err)}
	}

	results := make([]quiz.GradedResult, 0, len(out.Results))
	for _, r := range out.Results {
		if r.QuestionIndex < 0 || r.QuestionIndex >= len(q.Questions) {
			return nil, &ErrInvalidResponse{Err: fmt.Errorf("graded result references question index %d, quiz has %d questions", r.QuestionIndex, len(q.Questions))}
		}
		question := q.Questions[r.QuestionIndex]
		score := r.Score
		if score < 0 {
			score = 0
		}
		if score > question.Points {
			score = question.Points
		}
		results = append(results, quiz.GradedResult{
			QuestionID: question.ID,
			IsCorrect:  r.IsCorrect,
			Score:      score,
			Analysis:   r.Analysis,
		})
	}

	return results, nil
}

// AnalyzePreAssessment turns the learner's pre-assessment answers into a
// placement: summary, strengths, weaknesses and a recommended level.
func (s *Service) AnalyzePreAssessment(ctx context.Context, questions []quiz.Question, answers []quiz.Answer, material content.SourceMaterial) (*Assessment, error) {
	ctx = WithPurpose(ctx, "assessment")

	resp, err := s.provider.Generate(ctx, Request{
		System:      assessmentSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildAssessmentUserMessage(questions, answers, material)}},
		Schema:      AssessmentSchema,
		MaxTokens:   s.cfg.GradingMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("pre-assessment analysis: %w", err)
	}

	var out Assessment
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("parse assessment response: %w", err)}
	}

	return &out, nil
}

type remedialOutput struct {
	Title             string  `json:"title"`
	Difficulty        float64 `json:"difficulty"`
	LearningObjective string  `json:"learning_objective"`
	TargetSkill       string  `json:"target_skill"`
}

// GenerateRemedialUnit synthesizes a remedial unit targeting the given
// weaknesses. The caller splices it into the graph under the anchor.
func (s *Service) GenerateRemedialUnit(ctx context.Context, anchor graph.LearningUnit, weaknesses []weakness.Weakness, material content.SourceMaterial) (*graph.LearningUnit, error) {
	ctx = WithPurpose(ctx, "remedial")

	resp, err := s.provider.Generate(ctx, Request{
		System:      remedialSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildRemedialUserMessage(anchor, weaknesses, material)}},
		Schema:      RemedialSchema,
		MaxTokens:   s.cfg.PlanMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("remedial unit generation: %w", err)
	}

	var out remedialOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("parse remedial response: %w", err)}
	}
	if out.Title == "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("remedial unit has no title")}
	}

	return &graph.LearningUnit{
		ID:                uuid.NewString(),
		Title:             out.Title,
		Difficulty:        clamp01(out.Difficulty),
		Kind:              graph.KindRemedial,
		SourceRefs:        []string{material.Title},
		LearningObjective: out.LearningObjective,
		TargetSkill:       out.TargetSkill,
	}, nil
}

func questionFromOutput(q questionOutput) quiz.Question {
	kind := quiz.QuestionKind(q.Kind)
	if kind != quiz.KindMultipleChoice && kind != quiz.KindShortAnswer {
		kind = quiz.KindShortAnswer
	}
	return quiz.Question{
		ID:          uuid.NewString(),
		Text:        q.Text,
		Kind:        kind,
		Options:     q.Options,
		Answer:      q.Answer,
		Points:      q.Points,
		Difficulty:  clamp01(q.Difficulty),
		Explanation: q.Explanation,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
