package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/remediation"
	"github.com/abhisek/learnpath/internal/store"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start or resume an interactive learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd)
	},
}

func init() {
	learnCmd.Flags().String("session", "", "Session ID to resume (default: most recently modified)")
	learnCmd.Flags().Bool("new", false, "Start a fresh session instead of resuming")
	learnCmd.Flags().String("file", "", "Read source material from a file")
	learnCmd.Flags().String("title", "", "Title for the source material")
	learnCmd.Flags().String("level", "", "Presentation level: beginner, intermediate, advanced")
	learnCmd.Flags().Int("mercy-after", 0, "Failed attempts required before force-completing a unit (0 = anytime)")

	// The bare `learnpath` invocation runs the same session loop.
	rootCmd.Flags().AddFlagSet(learnCmd.Flags())
}

// runLearn opens the store, builds the oracle and engine, and hands
// control to the line-based session loop.
func runLearn(cmd *cobra.Command) error {
	ctx := cmd.Context()
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	owner := resolveOwner(cmd)
	syncMgr := newSyncManager(s)

	sessions, err := syncMgr.Load(ctx, owner)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	provider, err := oracle.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Knowledge oracle not configured:", err)
		fmt.Fprintln(os.Stderr, "Set LEARNPATH_PROVIDER, or one of ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY.")
		return err
	}
	svc := oracle.NewService(provider, oracle.DefaultServiceConfig())

	st, resumed := pickSession(cmd, sessions, owner)
	mercy, _ := cmd.Flags().GetInt("mercy-after")

	eng := engine.New(engine.Config{
		Oracle:           svc,
		Planner:          remediation.NewPlanner(svc),
		Sync:             syncMgr,
		Events:           s.EventRepo(),
		MinMercyAttempts: mercy,
	}, st)
	eng.Start()
	defer func() {
		eng.Stop()
		syncMgr.Wait()
	}()

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if resumed {
		fmt.Printf("Resuming %q.\n\n", st.Material.Title)
	}
	if currentStatus(eng) == engine.StatusIdle {
		if err := startFlow(cmd, eng, in); err != nil {
			return err
		}
	}

	renderState(eng)
	return sessionLoop(cmd, eng, in)
}

// pickSession resolves which saved session to resume, or returns a
// fresh one. The bool reports whether an existing session was chosen.
func pickSession(cmd *cobra.Command, sessions []*store.SavedSession, owner string) (*engine.State, bool) {
	if fresh, _ := cmd.Flags().GetBool("new"); fresh {
		return engine.NewState(owner), false
	}
	if id, _ := cmd.Flags().GetString("session"); id != "" {
		for _, s := range sessions {
			if s.ID == id || strings.HasPrefix(s.ID, id) {
				return engine.RestoreState(s.ID, owner, s.Data), true
			}
		}
		fmt.Fprintf(os.Stderr, "Session %q not found; starting fresh.\n", id)
		return engine.NewState(owner), false
	}
	if len(sessions) > 0 {
		s := sessions[0]
		return engine.RestoreState(s.ID, owner, s.Data), true
	}
	return engine.NewState(owner), false
}

// startFlow collects source material and kicks off plan generation.
func startFlow(cmd *cobra.Command, eng *engine.Engine, in *bufio.Scanner) error {
	material, err := readMaterial(cmd, in)
	if err != nil {
		return err
	}

	prefs := content.DefaultPreferences()
	if level, _ := cmd.Flags().GetString("level"); level != "" {
		prefs.Level = level
	}

	fmt.Println("Generating your learning path...")
	eng.Dispatch(engine.StartSession{Material: material, Prefs: prefs})
	waitQuiet(eng)
	return nil
}

func readMaterial(cmd *cobra.Command, in *bufio.Scanner) (content.SourceMaterial, error) {
	title, _ := cmd.Flags().GetString("title")

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return content.SourceMaterial{}, fmt.Errorf("read material: %w", err)
		}
		if title == "" {
			title = path
		}
		return content.SourceMaterial{Title: title, Text: string(b)}, nil
	}

	if title == "" {
		fmt.Print("What do you want to learn about? ")
		if !in.Scan() {
			return content.SourceMaterial{}, fmt.Errorf("no input")
		}
		title = strings.TrimSpace(in.Text())
	}

	fmt.Println("Paste your source material. End with a single '.' on its own line:")
	var lines []string
	for in.Scan() {
		line := in.Text()
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		// Bare topics are fine: the oracle treats the title as the brief.
		text = title
	}
	return content.SourceMaterial{Title: title, Text: text}, nil
}

// sessionLoop reads commands until the learner quits.
func sessionLoop(cmd *cobra.Command, eng *engine.Engine, in *bufio.Scanner) error {
	for {
		fmt.Print("\n> ")
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		verb, args := fields[0], fields[1:]

		switch verb {
		case "quit", "exit", "q":
			fmt.Println("Progress saved. See you next time.")
			return nil
		case "help", "h", "?":
			printHelp()
		case "path", "p":
			renderPath(eng)
		case "accept":
			eng.Dispatch(engine.AcceptPlan{})
			waitQuiet(eng)
			renderState(eng)
		case "take":
			takePreAssessment(eng, in)
		case "skip":
			eng.Dispatch(engine.SkipPreAssessment{})
			waitQuiet(eng)
			renderState(eng)
		case "open", "o":
			if len(args) == 0 {
				fmt.Println("Usage: open <number>")
				continue
			}
			openByIndex(eng, args[0])
		case "next", "n":
			eng.Dispatch(engine.NextUnit{})
			waitQuiet(eng)
			renderState(eng)
		case "prev":
			eng.Dispatch(engine.PrevUnit{})
			waitQuiet(eng)
			renderState(eng)
		case "back", "b":
			eng.Dispatch(engine.BackToPath{})
			waitQuiet(eng)
			renderState(eng)
		case "read", "r":
			renderContent(eng)
		case "quiz":
			runQuiz(eng, in)
		case "close":
			eng.Dispatch(engine.CloseReview{})
			waitQuiet(eng)
			renderState(eng)
		case "mercy":
			mercyByIndex(eng, args)
		case "remediate", "rem":
			remediateByIndex(eng, args)
		case "exam":
			runFinalExam(eng, in)
		case "weaknesses", "w":
			renderWeaknesses(eng)
		case "status":
			renderStatus(eng)
		case "reset":
			fmt.Print("This discards the whole session. Type 'yes' to confirm: ")
			if !in.Scan() || strings.TrimSpace(in.Text()) != "yes" {
				fmt.Println("Kept.")
				continue
			}
			eng.Dispatch(engine.Reset{})
			waitQuiet(eng)
			if err := startFlow(cmd, eng, in); err != nil {
				return err
			}
			renderState(eng)
		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", verb)
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  path            Show the learning path
  accept          Accept the generated plan
  take / skip     Take or skip the pre-assessment
  open <n>        Open unit n from the path
  next / prev     Move between unlocked units
  read            Re-print the current unit's content
  quiz            Take the current unit's quiz
  close           Close the quiz review
  mercy [n]       Force-complete a stuck unit
  remediate [n]   Request a remedial unit for a failed one
  exam            Take the final exam (when everything is completed)
  weaknesses      Show the weakness ledger
  status          Show session and sync status
  reset           Discard the session and start over
  quit            Save and exit`)
}

// --- intent helpers ---

func currentStatus(eng *engine.Engine) engine.Status {
	var st engine.Status
	eng.Inspect(func(s *engine.State) { st = s.Status })
	return st
}

// waitQuiet blocks until no command is in flight for the current view.
func waitQuiet(eng *engine.Engine) {
	deadline := time.Now().Add(5 * time.Minute)
	for {
		var busy bool
		eng.Inspect(func(s *engine.State) { busy = inFlight(s) })
		if !busy || time.Now().After(deadline) {
			return
		}
		time.Sleep(150 * time.Millisecond)
	}
}

func inFlight(s *engine.State) bool {
	switch s.Status {
	case engine.StatusGenerating,
		engine.StatusGradingPreAssessment,
		engine.StatusAdaptingPlan,
		engine.StatusGradingQuiz,
		engine.StatusGradingFinalExam:
		return true
	case engine.StatusViewingUnit:
		return s.Assembler.ContentInProgress(s.CurrentUnitID)
	case engine.StatusTakingQuiz:
		return s.ActiveQuiz == nil && s.Assembler.QuizInProgress(s.CurrentUnitID)
	case engine.StatusFinalExam:
		return s.ActiveQuiz == nil && s.Assembler.QuizInProgress(quiz.FinalExamUnitID)
	}
	return false
}

func unitIDAt(eng *engine.Engine, arg string) (string, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", false
	}
	var id string
	eng.Inspect(func(s *engine.State) {
		order := s.Forest.LinearOrder()
		if n >= 1 && n <= len(order) {
			id = order[n-1].ID
		}
	})
	return id, id != ""
}

func currentOrIndexed(eng *engine.Engine, args []string) (string, bool) {
	if len(args) > 0 {
		return unitIDAt(eng, args[0])
	}
	var id string
	eng.Inspect(func(s *engine.State) { id = s.CurrentUnitID })
	return id, id != ""
}

func openByIndex(eng *engine.Engine, arg string) {
	id, ok := unitIDAt(eng, arg)
	if !ok {
		fmt.Println("No such unit on the path.")
		return
	}
	eng.Dispatch(engine.OpenUnit{UnitID: id})
	waitQuiet(eng)
	renderState(eng)
}

func mercyByIndex(eng *engine.Engine, args []string) {
	id, ok := currentOrIndexed(eng, args)
	if !ok {
		fmt.Println("Usage: mercy <number>")
		return
	}
	eng.Dispatch(engine.MercyComplete{UnitID: id})
	waitQuiet(eng)
	renderState(eng)
}

func remediateByIndex(eng *engine.Engine, args []string) {
	id, ok := currentOrIndexed(eng, args)
	if !ok {
		fmt.Println("Usage: remediate <number>")
		return
	}
	fmt.Println("Preparing a remedial unit...")
	eng.Dispatch(engine.RequestRemediation{UnitID: id})
	waitQuiet(eng)
	renderState(eng)
}

// --- quiz flows ---

func activeQuiz(eng *engine.Engine) *quiz.Quiz {
	var q *quiz.Quiz
	eng.Inspect(func(s *engine.State) {
		if s.ActiveQuiz != nil {
			copied := *s.ActiveQuiz
			q = &copied
		}
	})
	return q
}

// askQuestions prompts for each question and returns the answers.
func askQuestions(q *quiz.Quiz, in *bufio.Scanner) []quiz.Answer {
	answers := make([]quiz.Answer, 0, len(q.Questions))
	for i, question := range q.Questions {
		fmt.Printf("\n%d/%d. %s\n", i+1, len(q.Questions), question.Text)
		if question.Kind == quiz.KindMultipleChoice {
			for j, opt := range question.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
		}
		fmt.Print("Your answer: ")
		var value string
		if in.Scan() {
			value = strings.TrimSpace(in.Text())
		}
		// A lone option letter selects that option.
		if question.Kind == quiz.KindMultipleChoice && len(value) == 1 {
			if j := int(value[0] - 'a'); j >= 0 && j < len(question.Options) {
				value = question.Options[j]
			}
		}
		answers = append(answers, quiz.Answer{QuestionID: question.ID, Value: value})
	}
	return answers
}

func takePreAssessment(eng *engine.Engine, in *bufio.Scanner) {
	if currentStatus(eng) != engine.StatusPreAssessment {
		fmt.Println("No pre-assessment pending.")
		return
	}
	q := activeQuiz(eng)
	if q == nil {
		fmt.Println("No pre-assessment pending.")
		return
	}
	fmt.Println("A few questions to calibrate the path. Blank answers are fine.")
	answers := askQuestions(q, in)
	fmt.Println("\nAnalyzing your answers...")
	eng.Dispatch(engine.SubmitPreAssessment{Answers: answers})
	waitQuiet(eng)
	renderState(eng)
}

func runQuiz(eng *engine.Engine, in *bufio.Scanner) {
	if currentStatus(eng) != engine.StatusViewingUnit {
		fmt.Println("Open a unit first.")
		return
	}
	fmt.Println("Preparing the quiz...")
	eng.Dispatch(engine.BeginQuiz{})
	waitQuiet(eng)

	q := activeQuiz(eng)
	if q == nil {
		renderState(eng)
		return
	}
	answers := askQuestions(q, in)
	fmt.Println("\nGrading...")
	eng.Dispatch(engine.SubmitQuiz{Answers: answers})
	waitQuiet(eng)
	renderState(eng)
}

func runFinalExam(eng *engine.Engine, in *bufio.Scanner) {
	if currentStatus(eng) != engine.StatusAllUnitsCompleted {
		fmt.Println("The final exam opens once every unit is completed.")
		return
	}
	fmt.Println("Preparing the final exam...")
	eng.Dispatch(engine.BeginFinalExam{})
	waitQuiet(eng)

	q := activeQuiz(eng)
	if q == nil {
		renderState(eng)
		return
	}
	answers := askQuestions(q, in)
	fmt.Println("\nGrading...")
	eng.Dispatch(engine.SubmitFinalExam{Answers: answers})
	waitQuiet(eng)
	renderState(eng)
}

// --- rendering ---

func renderState(eng *engine.Engine) {
	eng.Inspect(func(s *engine.State) {
		if s.ErrMsg != "" && s.Status != engine.StatusError {
			fmt.Println("!", s.ErrMsg)
		}
		switch s.Status {
		case engine.StatusIdle:
			fmt.Println("No session yet.")
		case engine.StatusPlanReview:
			fmt.Printf("\nProposed path for %q:\n", s.Material.Title)
			printPath(s)
			fmt.Println("\nType 'accept' to start, or 'reset' to try different material.")
		case engine.StatusPreAssessment:
			n := 0
			if s.ActiveQuiz != nil {
				n = len(s.ActiveQuiz.Questions)
			}
			fmt.Printf("\nOptional pre-assessment (%d questions). Type 'take' or 'skip'.\n", n)
		case engine.StatusLearning:
			fmt.Println()
			printPath(s)
			fmt.Println("\nType 'open <n>' to study a unit.")
		case engine.StatusViewingUnit:
			printUnit(s)
		case engine.StatusTakingQuiz, engine.StatusFinalExam:
			fmt.Println("A quiz is in progress.")
		case engine.StatusQuizReview:
			printReview(s)
		case engine.StatusAllUnitsCompleted:
			fmt.Println("\nEvery unit is completed. Type 'exam' for the final exam, or 'open <n>' to revisit a unit.")
		case engine.StatusSummary:
			printSummary(s)
		case engine.StatusError:
			fmt.Println("\nSomething went wrong:", s.ErrMsg)
			fmt.Println("Type 'reset' to start over.")
		}
	})
}

func renderPath(eng *engine.Engine) {
	eng.Inspect(func(s *engine.State) { printPath(s) })
}

func printPath(s *engine.State) {
	order := s.Forest.LinearOrder()
	if len(order) == 0 {
		fmt.Println("The path is empty.")
		return
	}
	for i, u := range order {
		marker := " "
		p := s.Progress[u.ID]
		switch {
		case u.Locked:
			marker = "🔒"
		case p != nil && p.Status == graph.StatusCompleted:
			marker = "✓"
		case p != nil && p.Status == graph.StatusFailed:
			marker = "✗"
		case p != nil && p.Status == graph.StatusInProgress:
			marker = "…"
		}
		indent := ""
		if !u.IsRoot() {
			indent = "  "
		}
		label := u.Title
		if u.Kind == graph.KindRemedial {
			label += " (remedial)"
		}
		extra := ""
		if p != nil && p.Attempts > 0 {
			extra = fmt.Sprintf("  [%d attempt(s), %.0f%%]", p.Attempts, p.Proficiency*100)
		}
		fmt.Printf("%3d. %s %s%s%s\n", i+1, marker, indent, label, extra)
	}
	fmt.Printf("\nProgress: %.0f%%\n", s.Forest.ProgressPercent(s.Progress))
}

func printUnit(s *engine.State) {
	unit, ok := s.CurrentUnit()
	if !ok {
		return
	}
	fmt.Printf("\n== %s ==\n", unit.Title)
	if unit.LearningObjective != "" {
		fmt.Println("Objective:", unit.LearningObjective)
	}
	if c, done := s.Assembler.Content(unit.ID); done {
		for _, sec := range c.Sections {
			if sec.Title != "" {
				fmt.Printf("\n-- %s --\n", sec.Title)
			} else {
				fmt.Println()
			}
			fmt.Println(sec.Body)
		}
	} else {
		fmt.Println("(content unavailable)")
	}
	fmt.Println("\nType 'quiz' when ready, or 'next' / 'prev' / 'back'.")
}

func renderContent(eng *engine.Engine) {
	eng.Inspect(func(s *engine.State) {
		if s.Status != engine.StatusViewingUnit {
			fmt.Println("Open a unit first.")
			return
		}
		printUnit(s)
	})
}

func printReview(s *engine.State) {
	out := s.LastOutcome
	if out == nil {
		return
	}
	verdict := "Not passed"
	if out.Passed {
		verdict = "Passed"
	}
	fmt.Printf("\n%s: %.1f / %.1f (%.0f%%)\n", verdict, out.Total, out.Max, out.Ratio*100)
	if out.RewardEligible {
		fmt.Println("⭐ High score!")
	}

	q, ok := s.Assembler.Quiz(out.UnitID)
	if ok {
		for _, r := range s.LastResults {
			question, found := q.Question(r.QuestionID)
			if !found {
				continue
			}
			mark := "✓"
			if !r.IsCorrect {
				mark = "✗"
			}
			fmt.Printf("\n%s %s\n", mark, question.Text)
			if !r.IsCorrect {
				fmt.Println("  Correct answer:", question.Answer)
			}
			if r.Analysis != "" {
				fmt.Println("  ", r.Analysis)
			}
		}
	}

	fmt.Println("\nType 'close' to continue.")
	if !out.Passed {
		fmt.Println("You can also 'remediate' for a targeted refresher, or 'mercy' to move on anyway.")
	}
}

func printSummary(s *engine.State) {
	fmt.Printf("\n== %s: done ==\n", s.Material.Title)
	if out := s.LastOutcome; out != nil {
		verdict := "not passed"
		if out.Passed {
			verdict = "passed"
		}
		fmt.Printf("Final exam: %.1f / %.1f (%s)\n", out.Total, out.Max, verdict)
	}
	b := s.Behavior
	fmt.Printf("Quizzes: %d taken, %d passed. Units viewed: %d.\n", b.QuizzesTaken, b.QuizzesPassed, b.UnitsViewed)
	if b.MercyCompletions > 0 {
		fmt.Printf("Mercy completions: %d.\n", b.MercyCompletions)
	}
	if b.RemedialsInserted > 0 {
		fmt.Printf("Remedial units: %d.\n", b.RemedialsInserted)
	}
	if len(s.Rewards) > 0 {
		fmt.Printf("Rewards earned: %d\n", len(s.Rewards))
		for _, r := range s.Rewards {
			fmt.Println("  ⭐", r.Title)
		}
	}
	fmt.Println("\nType 'reset' to study something new, or 'quit'.")
}

func renderWeaknesses(eng *engine.Engine) {
	eng.Inspect(func(s *engine.State) {
		entries := s.Ledger.Entries()
		if len(entries) == 0 {
			fmt.Println("No recorded weaknesses. Keep it up.")
			return
		}
		fmt.Printf("Missed concepts (%d):\n", len(entries))
		for _, w := range entries {
			fmt.Println("  •", w.QuestionText)
			fmt.Printf("    answered %q, expected %q\n", w.IncorrectAnswer, w.CorrectAnswer)
		}
	})
}

func renderStatus(eng *engine.Engine) {
	eng.Inspect(func(s *engine.State) {
		fmt.Println("Session:", s.SessionID)
		fmt.Println("Status: ", s.Status)
		fmt.Printf("Units:   %d (%.0f%% complete)\n", s.Forest.Len(), s.Forest.ProgressPercent(s.Progress))
	})
}
