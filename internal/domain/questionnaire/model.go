package questionnaire

import (
	"strconv"
	"strings"
)

type QuestionType string

const (
	TypeYesNo        QuestionType = "yes_no"
	TypeSingleChoice QuestionType = "single_choice"
	TypeMultiChoice  QuestionType = "multi_choice"
	TypeScale        QuestionType = "scale"
	TypeText         QuestionType = "text"
)

type Significance string

const (
	SignificanceRoutine   Significance = "routine"
	SignificanceImportant Significance = "important"
	SignificanceCritical  Significance = "critical"
)

// Option is one choice of a choice question. RedFlag marks choices that raise
// a flag on their own.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	RedFlag bool   `json:"red_flag,omitempty"`
}

// Condition gates a question on an earlier answer. The question is asked when
// the answer equals Value, equals one of AnyOf, or (for a multi-select answer)
// contains Value.
type Condition struct {
	DependsOn string   `json:"depends_on"`
	Value     string   `json:"value,omitempty"`
	AnyOf     []string `json:"any_of,omitempty"`
}

// RedFlagRule fires on a single answer: a numeric answer at or above Threshold,
// or an answer equal to Equals.
type RedFlagRule struct {
	Threshold *int    `json:"threshold,omitempty"`
	Equals    string  `json:"equals,omitempty"`
	Urgency   Urgency `json:"urgency"`
	Message   string  `json:"message"`
}

type Question struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	Type         QuestionType `json:"type"`
	Options      []Option     `json:"options,omitempty"`
	Min          int          `json:"min,omitempty"`
	Max          int          `json:"max,omitempty"`
	Condition    *Condition   `json:"condition,omitempty"`
	RedFlagRule  *RedFlagRule `json:"red_flag_rule,omitempty"`
	Significance Significance `json:"clinical_significance"`
}

// CombinationRule fires when every trigger holds. Triggers are written
// "question:value", "question:>=N" or "question:<=N".
type CombinationRule struct {
	ID       string   `json:"id"`
	Triggers []string `json:"triggers"`
	Urgency  Urgency  `json:"urgency"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

// Flag is a fired combination or per-question rule.
type Flag struct {
	RuleID     string  `json:"rule_id"`
	QuestionID string  `json:"question_id,omitempty"`
	Urgency    Urgency `json:"urgency"`
	Message    string  `json:"message"`
	Action     string  `json:"action,omitempty"`
}

// Answers maps question ids to answers; multi-select answers are comma-joined.
type Answers map[string]string

// Values splits a multi-select answer into its members.
func (a Answers) Values(id string) []string {
	raw, ok := a[id]
	if !ok || raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Has reports whether the answer to id equals v or, for a multi-select
// answer, contains v.
func (a Answers) Has(id, v string) bool {
	raw, ok := a[id]
	if !ok {
		return false
	}
	if raw == v {
		return true
	}
	if !strings.Contains(raw, ",") {
		return false
	}
	for _, m := range a.Values(id) {
		if m == v {
			return true
		}
	}
	return false
}

// Int parses a numeric answer.
func (a Answers) Int(id string) (int, bool) {
	raw, ok := a[id]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns a copy safe to mutate.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
