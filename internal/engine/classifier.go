package engine

import "CotSignal/internal/domain/models"

// Classify evaluates the resolved record's positioning indices against
// the active thresholds for both postures.
//
// If any of the three index values is absent the whole verdict degrades
// to unknown for both postures, regardless of the enablement mask. A
// disabled index otherwise contributes a vacuous pass to its posture's
// conjunction.
func Classify(r models.DailyRecord, pair models.ThresholdPair, en models.IndexEnablement) models.BinaryVerdict {
	if !r.HasAllIndices() {
		return models.BinaryVerdict{Long: models.VerdictUnknown, Short: models.VerdictUnknown}
	}
	return models.BinaryVerdict{
		Long:  classifyLong(r, pair.Long, en),
		Short: classifyShort(r, pair.Short, en),
	}
}

// classifyLong tests for long confirmation: commercials crowded above
// threshold while both speculator categories stay below theirs.
func classifyLong(r models.DailyRecord, t models.ThresholdSet, en models.IndexEnablement) models.Verdict {
	pass := (!en.Commercials || *r.Commercials > t.Commercials) &&
		(!en.LargeSpeculators || *r.LargeSpecs < t.LargeSpeculators) &&
		(!en.SmallSpeculators || *r.SmallSpecs < t.SmallSpeculators)
	return verdictOf(pass)
}

// classifyShort mirrors long with inverted comparisons.
func classifyShort(r models.DailyRecord, t models.ThresholdSet, en models.IndexEnablement) models.Verdict {
	pass := (!en.Commercials || *r.Commercials < t.Commercials) &&
		(!en.LargeSpeculators || *r.LargeSpecs > t.LargeSpeculators) &&
		(!en.SmallSpeculators || *r.SmallSpecs > t.SmallSpeculators)
	return verdictOf(pass)
}

func verdictOf(pass bool) models.Verdict {
	if pass {
		return models.VerdictTrue
	}
	return models.VerdictFalse
}
