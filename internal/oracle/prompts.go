package oracle

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/weakness"
)

const planSystemPrompt = `You are a curriculum designer. Given source material a learner wants to study, you break it into a small prerequisite-ordered set of topic units and write a short pre-assessment to probe what the learner already knows.`

func buildPlanUserMessage(material content.SourceMaterial, prefs content.Preferences) string {
	var b strings.Builder

	writeMaterial(&b, material)
	writePreferences(&b, prefs)

	b.WriteString(`
Instructions:
Design a learning plan:
1. Break the material into 4-10 topic units. Each unit covers one coherent concept and names the single skill it trains.
2. Arrange units as a prerequisite forest: parent_index points at the unit that must be mastered first, -1 marks a starting unit. Keep the forest shallow — at most one starting unit unless the material has truly independent threads.
3. Order difficulty so prerequisites are easier than their dependents.
4. Give a suggested_path covering every unit, prerequisites before dependents.
5. Write 3-5 pre-assessment questions spanning the material, from easy to hard, to locate the learner's starting point. Prefer multiple-choice with exactly 4 options.`)

	return b.String()
}

const contentSystemPrompt = `You are a tutor writing teaching material. You explain one topic at a time, grounded in the learner's own source material, adapted to their level and the strengths and weaknesses they have shown.`

// ContentInput carries everything unit content generation needs.
type ContentInput struct {
	Unit       graph.LearningUnit
	Material   content.SourceMaterial
	Prefs      content.Preferences
	Strengths  []string
	Weaknesses []string
}

func buildContentUserMessage(in ContentInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Unit: %s\n", in.Unit.Title))
	if in.Unit.LearningObjective != "" {
		b.WriteString(fmt.Sprintf("Objective: %s\n", in.Unit.LearningObjective))
	}
	if in.Unit.TargetSkill != "" {
		b.WriteString(fmt.Sprintf("Target skill: %s\n", in.Unit.TargetSkill))
	}
	b.WriteString(fmt.Sprintf("Difficulty: %.2f\n", in.Unit.Difficulty))
	if in.Unit.Kind == graph.KindRemedial {
		b.WriteString("This is a remedial unit: the learner failed the topic it anchors to. Reteach from fundamentals.\n")
	}

	b.WriteString("\n")
	writeMaterial(&b, in.Material)
	writePreferences(&b, in.Prefs)

	if len(in.Strengths) > 0 {
		b.WriteString("\nLearner strengths:\n")
		for _, s := range in.Strengths {
			b.WriteString(fmt.Sprintf("- %s\n", s))
		}
	}
	if len(in.Weaknesses) > 0 {
		b.WriteString("\nLearner weaknesses:\n")
		for _, w := range in.Weaknesses {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	b.WriteString(`
Instructions:
Write the unit's teaching content as six sections, in this order:
1. introduction — why this topic matters, 1 short paragraph.
2. theory — the core explanation, 2-6 paragraphs. Build on the learner's strengths, address their weaknesses directly.
3. example — one fully worked example drawn from or analogous to the source material.
4. connection — how this topic relates to the rest of the material and to what the learner already mastered.
5. interactive — one small task the learner can attempt on their own before the quiz.
6. conclusion — 2-3 sentence recap of the target skill.
Use plain prose. No markdown headers inside bodies.`)

	return b.String()
}

const quizSystemPrompt = `You are a tutor writing a mastery quiz for one topic. Questions must be answerable from the unit's teaching content alone and must test the unit's target skill, not trivia.`

func buildQuizUserMessage(unit graph.LearningUnit, unitContent content.Content, prefs content.Preferences) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Unit: %s\n", unit.Title))
	if unit.TargetSkill != "" {
		b.WriteString(fmt.Sprintf("Target skill: %s\n", unit.TargetSkill))
	}
	b.WriteString(fmt.Sprintf("Difficulty: %.2f\n", unit.Difficulty))

	b.WriteString("\nTeaching content:\n")
	b.WriteString(unitContent.Text())
	b.WriteString("\n")
	writePreferences(&b, prefs)

	b.WriteString(fmt.Sprintf(`
Instructions:
Write exactly %d questions:
1. Mix multiple-choice (exactly 4 options) and short-answer. At least one short-answer question.
2. Order from easiest to hardest. Spread difficulty around the unit's difficulty.
3. Every question must be answerable from the teaching content above.
4. Assign 1-3 points per question by difficulty.
5. Include a brief explanation of each correct answer.`, questionCount(prefs)))

	return b.String()
}

const finalExamSystemPrompt = `You are a tutor writing a final exam covering an entire completed curriculum. The exam must sample every unit and weigh harder units more heavily.`

func buildFinalExamUserMessage(units []graph.LearningUnit, material content.SourceMaterial, prefs content.Preferences) string {
	var b strings.Builder

	b.WriteString("Completed units:\n")
	for _, u := range units {
		b.WriteString(fmt.Sprintf("- %s (difficulty %.2f)", u.Title, u.Difficulty))
		if u.TargetSkill != "" {
			b.WriteString(fmt.Sprintf(" — %s", u.TargetSkill))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	writeMaterial(&b, material)
	writePreferences(&b, prefs)

	b.WriteString(fmt.Sprintf(`
Instructions:
Write a final exam of %d questions:
1. Cover every unit at least once; weight harder units with more or higher-point questions.
2. Prefer questions that combine skills from multiple units.
3. Mix multiple-choice (exactly 4 options) and short-answer.
4. Assign 1-3 points per question by difficulty, with a brief explanation of each correct answer.`, finalExamQuestionCount(prefs)))

	return b.String()
}

const gradingSystemPrompt = `You are grading a learner's quiz answers. Be exact for multiple-choice; for short answers, grade the substance of the response, allow partial credit, and never penalize phrasing.`

func buildGradingUserMessage(q *quiz.Quiz, answers []quiz.Answer, material content.SourceMaterial) string {
	var b strings.Builder

	answerByQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.Value
	}

	b.WriteString(fmt.Sprintf("Quiz: %s\n\n", q.Title))
	for i, question := range q.Questions {
		b.WriteString(fmt.Sprintf("Question %d (%s, %.0f points): %s\n", i, question.Kind, question.Points, question.Text))
		if len(question.Options) > 0 {
			b.WriteString(fmt.Sprintf("Options: %s\n", strings.Join(question.Options, " | ")))
		}
		b.WriteString(fmt.Sprintf("Correct answer: %s\n", question.Answer))
		answer, ok := answerByQuestion[question.ID]
		if !ok || answer == "" {
			b.WriteString("Learner answer: (no answer)\n\n")
			continue
		}
		b.WriteString(fmt.Sprintf("Learner answer: %s\n\n", answer))
	}

	if material.Title != "" {
		b.WriteString(fmt.Sprintf("Source material: %s\n", material.Title))
	}

	b.WriteString(`
Instructions:
Grade every question, in order, using question_index matching the numbering above:
1. Multiple-choice: full points iff the learner's answer matches the correct option, else 0. No partial credit.
2. Short-answer: grade substance against the correct answer. Award partial credit for partially correct responses. An unanswered question scores 0.
3. is_correct is true only when the learner earned at least 70% of the question's points.
4. Write a 1-2 sentence analysis per question; for wrong answers, name the misconception.`)

	return b.String()
}

const assessmentSystemPrompt = `You are analyzing a learner's pre-assessment answers to place them in a curriculum. You identify what they already know, where the gaps are, and the level to start at.`

func buildAssessmentUserMessage(questions []quiz.Question, answers []quiz.Answer, material content.SourceMaterial) string {
	var b strings.Builder

	answerByQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.Value
	}

	b.WriteString(fmt.Sprintf("Material: %s\n\nPre-assessment:\n", material.Title))
	for i, q := range questions {
		b.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, q.Text))
		b.WriteString(fmt.Sprintf("Correct answer: %s\n", q.Answer))
		b.WriteString(fmt.Sprintf("Learner answer: %s\n\n", answerByQuestion[q.ID]))
	}

	b.WriteString(`
Instructions:
1. Summarize the learner's starting point in 2-4 sentences.
2. List specific strengths and weaknesses shown by the answers (5-10 words each). Empty lists are fine if the evidence is thin.
3. Recommend a starting level: beginner, intermediate, or advanced.`)

	return b.String()
}

const remedialSystemPrompt = `You are a curriculum designer creating a remedial unit for a learner who repeatedly failed a topic. The remedial unit rebuilds the missing foundations, it does not repeat the failed unit.`

func buildRemedialUserMessage(anchor graph.LearningUnit, weaknesses []weakness.Weakness, material content.SourceMaterial) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Failed unit: %s (difficulty %.2f)\n", anchor.Title, anchor.Difficulty))
	if anchor.TargetSkill != "" {
		b.WriteString(fmt.Sprintf("Target skill: %s\n", anchor.TargetSkill))
	}

	b.WriteString("\nDemonstrated weaknesses:\n")
	for _, w := range weaknesses {
		b.WriteString(fmt.Sprintf("- Question: %s\n  Learner answered: %s\n  Correct: %s\n", w.QuestionText, w.IncorrectAnswer, w.CorrectAnswer))
	}

	b.WriteString("\n")
	writeMaterial(&b, material)

	b.WriteString(`
Instructions:
Design one remedial unit:
1. Target the specific misconceptions shown above, not the failed unit's full scope.
2. Set difficulty strictly below the failed unit's difficulty.
3. Name the single foundational skill the unit rebuilds.`)

	return b.String()
}

func writeMaterial(b *strings.Builder, material content.SourceMaterial) {
	b.WriteString(fmt.Sprintf("Source material: %s\n", material.Title))
	b.WriteString(material.Text)
	b.WriteString("\n")
}

func writePreferences(b *strings.Builder, prefs content.Preferences) {
	b.WriteString(fmt.Sprintf("\nLearner preferences: level=%s, tone=%s, language=%s\n", prefs.Level, prefs.Tone, prefs.Language))
}

func questionCount(prefs content.Preferences) int {
	if prefs.QuestionCount > 0 {
		return prefs.QuestionCount
	}
	return content.DefaultPreferences().QuestionCount
}

func finalExamQuestionCount(prefs content.Preferences) int {
	// Final exams run twice the length of a unit quiz.
	return 2 * questionCount(prefs)
}
