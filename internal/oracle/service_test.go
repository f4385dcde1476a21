package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
)

func testMaterial() content.SourceMaterial {
	return content.SourceMaterial{Title: "Graph Theory Primer", Text: "Vertices, edges, paths..."}
}

const planJSON = `{
	"units": [
		{"title": "Graphs and Vertices", "parent_index": -1, "difficulty": 0.2, "learning_objective": "Define graphs", "target_skill": "graph vocabulary"},
		{"title": "Paths and Cycles", "parent_index": 0, "difficulty": 0.5, "learning_objective": "Trace paths", "target_skill": "path tracing"},
		{"title": "Trees", "parent_index": 1, "difficulty": 0.7, "learning_objective": "Recognize trees", "target_skill": "tree identification"}
	],
	"suggested_path": [0, 1, 2],
	"pre_assessment": [
		{"text": "What is a vertex?", "kind": "short-answer", "options": [], "answer": "A node of the graph", "points": 1, "difficulty": 0.1, "explanation": "Vertices are nodes."},
		{"text": "How many edges does a triangle have?", "kind": "multiple-choice", "options": ["1", "2", "3", "4"], "answer": "3", "points": 1, "difficulty": 0.2, "explanation": "Three sides, three edges."}
	]
}`

func TestGeneratePlan_EmitsEventsInOrder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(planJSON)})
	svc := NewService(mock, DefaultServiceConfig())

	var order []string
	plan, err := svc.GeneratePlan(context.Background(), testMaterial(), content.DefaultPreferences(), PlanEvents{
		UnitsReady: func(units []graph.LearningUnit, path []string) {
			order = append(order, "units")
			if len(units) != 3 {
				t.Fatalf("expected 3 units, got %d", len(units))
			}
			if len(path) != 3 {
				t.Fatalf("expected path of 3, got %d", len(path))
			}
		},
		PreAssessmentQuestion: func(q quiz.Question) {
			order = append(order, "question:"+q.Text)
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"units", "question:What is a vertex?", "question:How many edges does a triangle have?"}
	if len(order) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(order), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("event %d: expected %q, got %q", i, want[i], order[i])
		}
	}

	if plan.PreAssessment.UnitID != quiz.PreAssessmentUnitID {
		t.Fatalf("expected pre-assessment unit id, got %q", plan.PreAssessment.UnitID)
	}
}

func TestGeneratePlan_ExactlyOneUnlockedRoot(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(planJSON)})
	svc := NewService(mock, DefaultServiceConfig())

	plan, err := svc.GeneratePlan(context.Background(), testMaterial(), content.DefaultPreferences(), PlanEvents{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unlocked := 0
	for _, u := range plan.Units {
		if !u.Locked {
			unlocked++
			if !u.IsRoot() {
				t.Fatalf("non-root unit %q is unlocked", u.Title)
			}
		}
	}
	if unlocked != 1 {
		t.Fatalf("expected exactly 1 unlocked unit, got %d", unlocked)
	}

	// Parent links resolve to generated IDs.
	if plan.Units[1].ParentID != plan.Units[0].ID {
		t.Fatal("expected unit 1 to be a child of unit 0")
	}
}

func TestGeneratePlan_RejectsInvalidParentIndex(t *testing.T) {
	bad := `{"units":[{"title":"A","parent_index":5,"difficulty":0.5,"learning_objective":"x","target_skill":"y"}],"suggested_path":[0],"pre_assessment":[]}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(bad)})
	svc := NewService(mock, DefaultServiceConfig())

	_, err := svc.GeneratePlan(context.Background(), testMaterial(), content.DefaultPreferences(), PlanEvents{})
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestGenerateUnitContent_SectionsInEmissionOrder(t *testing.T) {
	payload := `{"sections":[
		{"kind":"introduction","title":"Why trees","body":"Intro."},
		{"kind":"theory","title":"Definition","body":"Theory."},
		{"kind":"conclusion","title":"Recap","body":"Done."}
	]}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	var kinds []content.SectionKind
	unit := graph.LearningUnit{ID: "u1", Title: "Trees"}
	got, err := svc.GenerateUnitContent(context.Background(), ContentInput{
		Unit:     unit,
		Material: testMaterial(),
		Prefs:    content.DefaultPreferences(),
	}, ContentEvents{
		Section: func(s content.Section) { kinds = append(kinds, s.Kind) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.UnitID != "u1" {
		t.Fatalf("expected unit id u1, got %q", got.UnitID)
	}
	if len(got.Sections) != 3 || len(kinds) != 3 {
		t.Fatalf("expected 3 sections and 3 events, got %d / %d", len(got.Sections), len(kinds))
	}
	if kinds[0] != content.SectionIntroduction || kinds[2] != content.SectionConclusion {
		t.Fatalf("sections out of emission order: %v", kinds)
	}
}

func TestGenerateQuiz_AssignsQuestionIDs(t *testing.T) {
	payload := `{"questions":[
		{"text":"Q1","kind":"multiple-choice","options":["a","b","c","d"],"answer":"a","points":1,"difficulty":0.3,"explanation":"e1"},
		{"text":"Q2","kind":"short-answer","options":[],"answer":"x","points":2,"difficulty":0.6,"explanation":"e2"}
	]}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	var streamed int
	unit := graph.LearningUnit{ID: "u1", Title: "Trees"}
	q, err := svc.GenerateQuiz(context.Background(), unit, content.Content{UnitID: "u1"}, content.DefaultPreferences(), QuizEvents{
		Question: func(quiz.Question) { streamed++ },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.UnitID != "u1" {
		t.Fatalf("expected unit id u1, got %q", q.UnitID)
	}
	if streamed != 2 {
		t.Fatalf("expected 2 streamed questions, got %d", streamed)
	}
	if q.Questions[0].ID == "" || q.Questions[0].ID == q.Questions[1].ID {
		t.Fatal("expected distinct non-empty question ids")
	}
	if q.MaxPoints() != 3 {
		t.Fatalf("expected max points 3, got %f", q.MaxPoints())
	}
}

func TestGradeQuiz_MapsIndicesToQuestionIDs(t *testing.T) {
	payload := `{"results":[
		{"question_index":0,"is_correct":true,"score":1,"analysis":"good"},
		{"question_index":1,"is_correct":false,"score":0.5,"analysis":"partial"}
	]}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	q := &quiz.Quiz{
		ID:     "quiz1",
		UnitID: "u1",
		Questions: []quiz.Question{
			{ID: "q-a", Text: "Q1", Points: 1},
			{ID: "q-b", Text: "Q2", Points: 2},
		},
	}
	results, err := svc.GradeQuiz(context.Background(), q, []quiz.Answer{{QuestionID: "q-a", Value: "a"}}, testMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].QuestionID != "q-a" || results[1].QuestionID != "q-b" {
		t.Fatalf("question ids not mapped: %+v", results)
	}
	if !results[0].IsCorrect || results[1].IsCorrect {
		t.Fatalf("correctness not mapped: %+v", results)
	}
}

func TestGradeQuiz_RejectsOutOfRangeIndex(t *testing.T) {
	payload := `{"results":[{"question_index":7,"is_correct":true,"score":1,"analysis":"?"}]}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	q := &quiz.Quiz{ID: "quiz1", Questions: []quiz.Question{{ID: "q-a", Points: 1}}}
	_, err := svc.GradeQuiz(context.Background(), q, nil, testMaterial())
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestGradeQuiz_ClampsScoreToQuestionPoints(t *testing.T) {
	payload := `{"results":[{"question_index":0,"is_correct":true,"score":9,"analysis":"over"}]}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	q := &quiz.Quiz{ID: "quiz1", Questions: []quiz.Question{{ID: "q-a", Points: 2}}}
	results, err := svc.GradeQuiz(context.Background(), q, nil, testMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Score != 2 {
		t.Fatalf("expected score clamped to 2, got %f", results[0].Score)
	}
}

func TestAnalyzePreAssessment(t *testing.T) {
	payload := `{"summary":"Knows the basics.","strengths":["graph vocabulary"],"weaknesses":["cycle detection"],"recommended_level":"intermediate"}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	a, err := svc.AnalyzePreAssessment(context.Background(), []quiz.Question{{ID: "q1", Text: "?"}}, nil, testMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.RecommendedLevel != "intermediate" {
		t.Fatalf("expected intermediate, got %q", a.RecommendedLevel)
	}
	if len(a.Strengths) != 1 || len(a.Weaknesses) != 1 {
		t.Fatalf("unexpected analysis: %+v", a)
	}
}

func TestGenerateRemedialUnit(t *testing.T) {
	payload := `{"title":"Revisiting Paths","difficulty":0.3,"learning_objective":"Trace simple paths","target_skill":"path tracing"}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultServiceConfig())

	anchor := graph.LearningUnit{ID: "u2", Title: "Paths and Cycles", Difficulty: 0.5}
	unit, err := svc.GenerateRemedialUnit(context.Background(), anchor, nil, testMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit.Kind != graph.KindRemedial {
		t.Fatalf("expected remedial kind, got %q", unit.Kind)
	}
	if unit.ID == "" {
		t.Fatal("expected generated id")
	}
	if unit.Title != "Revisiting Paths" {
		t.Fatalf("unexpected title %q", unit.Title)
	}
}

func TestGenerateRemedialUnit_ProviderFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultServiceConfig())

	_, err := svc.GenerateRemedialUnit(context.Background(), graph.LearningUnit{ID: "u2"}, nil, testMaterial())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}
