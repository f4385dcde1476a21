package oracle

// questionDefinition is the shared schema fragment for a quiz question.
var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{
			"type":        "string",
			"description": "The question text",
		},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"multiple-choice", "short-answer"},
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 options for multiple-choice questions, empty for short-answer",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The correct answer. For multiple-choice, the exact text of the correct option",
		},
		"points": map[string]any{
			"type":        "number",
			"description": "Points awarded for a fully correct answer (1-3)",
		},
		"difficulty": map[string]any{
			"type":        "number",
			"description": "Difficulty from 0.0 (trivial) to 1.0 (hardest)",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Brief explanation of why the answer is correct",
		},
	},
	"required":             []any{"text", "kind", "options", "answer", "points", "difficulty", "explanation"},
	"additionalProperties": false,
}

// PlanSchema defines the JSON schema for learning plan generation.
var PlanSchema = &Schema{
	Name:        "learning-plan",
	Description: "A learning plan: a forest of topic units, a suggested study order, and a short pre-assessment quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"units": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short topic title (3-8 words)",
						},
						"parent_index": map[string]any{
							"type":        "integer",
							"description": "Index of the prerequisite unit in this array, or -1 for a root unit",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"description": "Difficulty from 0.0 to 1.0",
						},
						"learning_objective": map[string]any{
							"type":        "string",
							"description": "What the learner can do after completing this unit",
						},
						"target_skill": map[string]any{
							"type":        "string",
							"description": "The single skill this unit trains (3-6 words)",
						},
					},
					"required":             []any{"title", "parent_index", "difficulty", "learning_objective", "target_skill"},
					"additionalProperties": false,
				},
			},
			"suggested_path": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
				"description": "Recommended study order as indices into units",
			},
			"pre_assessment": map[string]any{
				"type":        "array",
				"items":       questionDefinition,
				"description": "3-5 questions probing the learner's prior knowledge",
			},
		},
		"required":             []any{"units", "suggested_path", "pre_assessment"},
		"additionalProperties": false,
	},
}

// ContentSchema defines the JSON schema for unit content generation.
var ContentSchema = &Schema{
	Name:        "unit-content",
	Description: "Long-form teaching content for one topic unit, as ordered sections",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"introduction", "theory", "example", "connection", "interactive", "conclusion"},
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Section heading",
						},
						"body": map[string]any{
							"type":        "string",
							"description": "Section text in plain prose, 2-6 paragraphs for theory, shorter elsewhere",
						},
					},
					"required":             []any{"kind", "title", "body"},
					"additionalProperties": false,
				},
				"description": "Sections in reading order: introduction, theory, example, connection, interactive, conclusion",
			},
		},
		"required":             []any{"sections"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation.
var QuizSchema = &Schema{
	Name:        "unit-quiz",
	Description: "A quiz testing mastery of one topic unit",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// GradingSchema defines the JSON schema for quiz grading.
var GradingSchema = &Schema{
	Name:        "quiz-grading",
	Description: "Graded results for a submitted quiz, one entry per question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_index": map[string]any{
							"type":        "integer",
							"description": "Index of the question being graded, matching the submitted order",
						},
						"is_correct": map[string]any{
							"type": "boolean",
						},
						"score": map[string]any{
							"type":        "number",
							"description": "Points earned, between 0 and the question's points. Partial credit allowed for short answers",
						},
						"analysis": map[string]any{
							"type":        "string",
							"description": "1-2 sentence analysis of the learner's answer",
						},
					},
					"required":             []any{"question_index", "is_correct", "score", "analysis"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"results"},
		"additionalProperties": false,
	},
}

// AssessmentSchema defines the JSON schema for pre-assessment analysis.
var AssessmentSchema = &Schema{
	Name:        "pre-assessment-analysis",
	Description: "Analysis of a learner's pre-assessment answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence summary of the learner's starting point",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific strengths observed (5-10 words each)",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific gaps observed (5-10 words each)",
			},
			"recommended_level": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
		},
		"required":             []any{"summary", "strengths", "weaknesses", "recommended_level"},
		"additionalProperties": false,
	},
}

// RemedialSchema defines the JSON schema for remedial unit generation.
var RemedialSchema = &Schema{
	Name:        "remedial-unit",
	Description: "A remedial topic unit targeting a learner's demonstrated weaknesses",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title making clear this revisits the struggling topic (3-8 words)",
			},
			"difficulty": map[string]any{
				"type":        "number",
				"description": "Difficulty from 0.0 to 1.0, below the anchor unit's difficulty",
			},
			"learning_objective": map[string]any{
				"type":        "string",
				"description": "What the learner can do after completing this unit",
			},
			"target_skill": map[string]any{
				"type":        "string",
				"description": "The single skill this unit rebuilds (3-6 words)",
			},
		},
		"required":             []any{"title", "difficulty", "learning_objective", "target_skill"},
		"additionalProperties": false,
	},
}
