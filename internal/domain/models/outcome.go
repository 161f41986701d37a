package models

import "time"

// DecisionOutcome is the full result of evaluating one commodity on one
// date: the threshold verdict, the external evidence, and both
// classification paths. Engine is nil when no external signal could be
// fetched; Baseline is nil for the same reason. Display is the value a
// client should show, with Source naming the path that produced it.
type DecisionOutcome struct {
	Commodity     Commodity       `json:"commodity"`
	RequestedDate time.Time       `json:"-"`
	ResolvedDate  time.Time       `json:"-"`
	Verdict       BinaryVerdict   `json:"verdict"`
	Signal        *ExternalSignal `json:"signal,omitempty"`
	NewsFailure   *bool           `json:"news_failure,omitempty"`
	Engine        *Decision       `json:"engine,omitempty"`
	Baseline      *Decision       `json:"baseline,omitempty"`
	Display       Decision        `json:"display"`
	Source        DecisionSource  `json:"source"`
}
