package usecase

import (
	"context"
	"time"

	"CotSignal/internal/domain/models"
	domrepo "CotSignal/internal/domain/repository"
	"CotSignal/internal/engine"
	applogger "CotSignal/pkg/logger"
	"CotSignal/pkg/util"
)

// DecisionUsecase runs the full evaluation for one commodity and date:
// threshold classification over the resolved record, news
// reconciliation over the external signal, and arbitration. When the
// verdict is unknown the upstream baseline is the display value; when
// the signal fetch fails neither path runs and the display is a
// labeled hold.
type DecisionUsecase struct {
	series  *SeriesUsecase
	signals *SignalUsecase
	metrics domrepo.Metrics
	l       *applogger.Logger
}

func NewDecisionUsecase(series *SeriesUsecase, signals *SignalUsecase, metrics domrepo.Metrics, l *applogger.Logger) *DecisionUsecase {
	return &DecisionUsecase{series: series, signals: signals, metrics: metrics, l: l}
}

// Decide evaluates one date under the given thresholds and mask.
func (u *DecisionUsecase) Decide(
	ctx context.Context,
	c models.Commodity,
	date time.Time,
	pair models.ThresholdPair,
	en models.IndexEnablement,
) (*models.DecisionOutcome, error) {
	series, err := u.series.Get(ctx, c)
	if err != nil {
		u.metrics.RecordError("series_load")
		return nil, err
	}
	record, err := series.Resolve(util.Day(date))
	if err != nil {
		u.metrics.RecordError("no_data")
		return nil, err
	}

	out := &models.DecisionOutcome{
		Commodity:     c,
		RequestedDate: util.Day(date),
		ResolvedDate:  record.Date,
		Verdict:       engine.Classify(record, pair, en),
	}
	if !record.HasAllIndices() {
		u.metrics.RecordError("missing_index")
	}

	sig, err := u.signals.Build(ctx, c, date)
	if err != nil {
		// No signal, no arbitration. Degrade to a labeled hold.
		u.metrics.RecordError("fetch_failure")
		out.Display = models.Decision{Action: models.ActionHold, Reason: "no signal available"}
		out.Source = models.SourceUnavailable
		if u.l != nil {
			u.l.Warn("decision without signal",
				applogger.String("commodity", c.String()),
				applogger.String("date", util.FormatDate(date)),
				applogger.Error(err),
			)
		}
		return out, nil
	}

	out.Signal = sig
	failure := engine.NewsFailure(*sig)
	out.NewsFailure = &failure
	baseline := models.Decision{Action: sig.BaselineAction, Reason: sig.Reason}
	out.Baseline = &baseline

	if out.Verdict.Known() {
		d := engine.Arbitrate(out.Verdict, failure)
		out.Engine = &d
		out.Display = d
		out.Source = models.SourceEngine
	} else {
		out.Display = baseline
		out.Source = models.SourceBaseline
	}

	u.metrics.RecordDecision(c.String(), string(out.Display.Action))
	return out, nil
}

// DecideDefault evaluates with the registry defaults and all indices
// enabled.
func (u *DecisionUsecase) DecideDefault(ctx context.Context, c models.Commodity, date time.Time) (*models.DecisionOutcome, error) {
	pair, err := engine.DefaultThresholds(c)
	if err != nil {
		return nil, err
	}
	return u.Decide(ctx, c, date, pair, models.AllEnabled())
}
