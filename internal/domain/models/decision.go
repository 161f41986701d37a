package models

// Verdict is the tri-state outcome of threshold classification for one posture.
// Unknown arises when required index data is absent; it is distinct from a
// computed false and is surfaced as "unavailable".
type Verdict string

const (
	VerdictTrue    Verdict = "true"
	VerdictFalse   Verdict = "false"
	VerdictUnknown Verdict = "unknown"
)

// IsTrue reports whether v is a computed true. Unknown is not true.
func (v Verdict) IsTrue() bool { return v == VerdictTrue }

// BinaryVerdict pairs the long and short posture verdicts.
type BinaryVerdict struct {
	Long  Verdict `json:"long"`
	Short Verdict `json:"short"`
}

// Known reports whether the verdict carries any computed information.
// With the all-or-nothing absent-data rule both sides degrade together.
func (b BinaryVerdict) Known() bool {
	return b.Long != VerdictUnknown || b.Short != VerdictUnknown
}

// Action is the categorical trading recommendation.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// Decision is an action with its human-readable justification.
type Decision struct {
	Action Action `json:"action"`
	Reason string `json:"reason"`
}

// DecisionSource names which classification path produced the display value.
type DecisionSource string

const (
	// SourceEngine means the arbiter ran over a computed BinaryVerdict.
	SourceEngine DecisionSource = "engine"
	// SourceBaseline means no BinaryVerdict could be computed and the
	// upstream agreement/reversal classification is the display value.
	SourceBaseline DecisionSource = "baseline"
)

// SourceUnavailable means the external signal fetch failed and neither
// path could run; the display value is a labeled hold.
const SourceUnavailable DecisionSource = "unavailable"
