package engine

import "CotSignal/internal/domain/models"

// Arbitrate merges the threshold verdict and the reconciler flag into a
// single recommendation. Rules are evaluated in order, first match
// wins; an unknown verdict counts as not-true throughout.
func Arbitrate(v models.BinaryVerdict, newsFailure bool) models.Decision {
	long := v.Long.IsTrue()
	short := v.Short.IsTrue()

	switch {
	case long && short:
		return models.Decision{
			Action: models.ActionBuy,
			Reason: "positioning extremes confirm both postures; long takes precedence",
		}
	case newsFailure && long:
		return models.Decision{
			Action: models.ActionBuy,
			Reason: "news evidence unreliable; long positioning confirmation decides",
		}
	case newsFailure && short:
		return models.Decision{
			Action: models.ActionSell,
			Reason: "news evidence unreliable; short positioning confirmation decides",
		}
	case !newsFailure:
		return models.Decision{
			Action: models.ActionHold,
			Reason: "sentiment and price agree; positioning evidence not decisive",
		}
	case newsFailure && !long && !short:
		return models.Decision{
			Action: models.ActionHold,
			Reason: "no positioning confirmation",
		}
	}

	// Unreachable: the cases above are exhaustive. Defined for safety.
	return models.Decision{Action: models.ActionHold, Reason: "no decisive evidence"}
}
