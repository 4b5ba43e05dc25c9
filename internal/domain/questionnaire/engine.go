package questionnaire

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ehr/intake/internal/domain/anatomy"
)

// Engine generates adaptive question sets and evaluates answer-driven red flags.
// It is immutable after construction.
type Engine struct {
	reg      *anatomy.Registry
	baseline []Question
	banks    map[string][]Question
	rules    []CombinationRule
}

func NewEngine(reg *anatomy.Registry) *Engine {
	return &Engine{
		reg:      reg,
		baseline: baselineQuestions(),
		banks:    questionBanks(),
		rules:    combinationRules(),
	}
}

// Rules returns the registered combination rules in evaluation order.
func (e *Engine) Rules() []CombinationRule {
	return append([]CombinationRule(nil), e.rules...)
}

// BankFor returns the question bank name for a zone, or "" when the zone is
// unknown or its region has no bank.
func (e *Engine) BankFor(zoneID string) string {
	z := e.reg.Zone(zoneID)
	if z == nil {
		return ""
	}
	return bankForCategory[z.Category]
}

// GenerateQuestions returns the baseline questions followed by the zone's
// bank, keeping only those whose condition is satisfied by answers.
func (e *Engine) GenerateQuestions(zoneID string, answers Answers) []Question {
	all := append([]Question(nil), e.baseline...)
	all = append(all, e.banks[e.BankFor(zoneID)]...)
	out := make([]Question, 0, len(all))
	for _, q := range all {
		if ShouldAsk(q, answers) {
			out = append(out, q)
		}
	}
	return out
}

// NextQuestion returns the first generated question not yet answered, or nil
// when the set is exhausted.
func (e *Engine) NextQuestion(zoneID string, answers Answers) *Question {
	for _, q := range e.GenerateQuestions(zoneID, answers) {
		if _, ok := answers[q.ID]; !ok {
			q := q
			return &q
		}
	}
	return nil
}

// ShouldAsk reports whether q's condition holds for answers. Unconditional
// questions are always asked.
func ShouldAsk(q Question, answers Answers) bool {
	c := q.Condition
	if c == nil {
		return true
	}
	got, ok := answers[c.DependsOn]
	if !ok {
		return false
	}
	if c.Value != "" && answers.Has(c.DependsOn, c.Value) {
		return true
	}
	for _, v := range c.AnyOf {
		if got == v {
			return true
		}
	}
	return false
}

// EvaluateRedFlags runs every combination rule and returns those whose
// triggers all hold, most urgent first.
func (e *Engine) EvaluateRedFlags(answers Answers) []Flag {
	out := []Flag{}
	for _, r := range e.rules {
		if r.matches(answers) {
			out = append(out, Flag{RuleID: r.ID, Urgency: r.Urgency, Message: r.Message, Action: r.Action})
		}
	}
	SortFlags(out)
	return out
}

// EvaluateQuestionFlags fires per-question red flag rules and red-flagged
// options for the answered questions.
func (e *Engine) EvaluateQuestionFlags(questions []Question, answers Answers) []Flag {
	out := []Flag{}
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			continue
		}
		if r := q.RedFlagRule; r != nil && r.fires(q.ID, answers) {
			out = append(out, Flag{RuleID: "q_" + q.ID, QuestionID: q.ID, Urgency: r.Urgency, Message: r.Message})
		}
		for _, o := range q.Options {
			if o.RedFlag && answers.Has(q.ID, o.Value) {
				u := UrgencyMedium
				if q.Significance == SignificanceCritical {
					u = UrgencyHigh
				}
				out = append(out, Flag{
					RuleID:     "q_" + q.ID + "_" + o.Value,
					QuestionID: q.ID,
					Urgency:    u,
					Message:    fmt.Sprintf("%s: %s", strings.TrimSuffix(q.Text, "?"), o.Label),
				})
			}
		}
	}
	SortFlags(out)
	return out
}

// SortFlags orders flags most urgent first, keeping ties in place.
func SortFlags(flags []Flag) {
	sort.SliceStable(flags, func(i, j int) bool { return flags[i].Urgency.Rank() < flags[j].Urgency.Rank() })
}

func (r RedFlagRule) fires(id string, answers Answers) bool {
	if r.Threshold != nil {
		if n, ok := answers.Int(id); ok && n >= *r.Threshold {
			return true
		}
	}
	return r.Equals != "" && answers.Has(id, r.Equals)
}

func (r CombinationRule) matches(answers Answers) bool {
	if len(r.Triggers) == 0 {
		return false
	}
	for _, t := range r.Triggers {
		if !triggerHolds(t, answers) {
			return false
		}
	}
	return true
}

func triggerHolds(trigger string, answers Answers) bool {
	id, expected, ok := strings.Cut(trigger, ":")
	if !ok {
		return false
	}
	for _, op := range []string{">=", "<="} {
		if !strings.HasPrefix(expected, op) {
			continue
		}
		want, err := strconv.Atoi(strings.TrimPrefix(expected, op))
		if err != nil {
			return false
		}
		got, ok := answers.Int(id)
		if !ok {
			return false
		}
		if op == ">=" {
			return got >= want
		}
		return got <= want
	}
	return answers.Has(id, expected)
}

var durationBonus = map[string]int{
	DurationUnderHour: 20,
	DurationHours:     15,
	DurationDays:      10,
	DurationWeeks:     5,
	DurationLong:      0,
}

var onsetBonus = map[string]int{
	OnsetSudden:       15,
	OnsetGradualHours: 10,
}

// CalculateTriageScore is the capped additive urgency score in [0,100].
func CalculateTriageScore(answers Answers, flags []Flag) int {
	score := 0
	for _, f := range flags {
		score += f.Urgency.Points()
	}
	if sev, ok := answers.Int(QSeverity); ok {
		if sev < 0 {
			sev = 0
		}
		if sev > 10 {
			sev = 10
		}
		score += 2 * sev
	}
	score += durationBonus[answers[QDuration]]
	score += onsetBonus[answers[QOnset]]
	if score > 100 {
		return 100
	}
	return score
}
