package api

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/engine"
	"CotSignal/internal/usecase"
	xhttp "CotSignal/pkg/http"
	xlogger "CotSignal/pkg/logger"
	"CotSignal/pkg/util"
)

// MarketsHandler serves the per-commodity read API: series data,
// external signals, news, and full decisions.
type MarketsHandler struct {
	logger    *xlogger.Logger
	series    *usecase.SeriesUsecase
	signals   *usecase.SignalUsecase
	decisions *usecase.DecisionUsecase
}

func NewMarketsHandler(logger *xlogger.Logger, series *usecase.SeriesUsecase, signals *usecase.SignalUsecase, decisions *usecase.DecisionUsecase) *MarketsHandler {
	return &MarketsHandler{logger: logger, series: series, signals: signals, decisions: decisions}
}

func (h *MarketsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/commodities", h.Commodities)
	g.GET("/:commodity/data", h.Data)
	g.GET("/:commodity/data/date/:date", h.DataByDate)
	g.GET("/:commodity/signal/:date", h.Signal)
	g.GET("/:commodity/news/:date", h.News)
	g.GET("/:commodity/decision/:date", h.Decision)
}

// seriesRow keeps the source field labels on the wire.
type seriesRow struct {
	Time        string   `json:"time"`
	Close       *float64 `json:"close,omitempty"`
	Commercials *float64 `json:"Commercials Index,omitempty"`
	LargeSpecs  *float64 `json:"Large Speculators Index,omitempty"`
	SmallSpecs  *float64 `json:"Small Speculators Index,omitempty"`
}

func toRow(r models.DailyRecord) seriesRow {
	return seriesRow{
		Time:        util.FormatDate(r.Date),
		Close:       r.Close,
		Commercials: r.Commercials,
		LargeSpecs:  r.LargeSpecs,
		SmallSpecs:  r.SmallSpecs,
	}
}

func (h *MarketsHandler) Commodities(c echo.Context) error {
	keys := models.AllCommodities()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{"commodities": out})
}

func (h *MarketsHandler) Data(c echo.Context) error {
	commodity, appErr := parseCommodity(c)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	series, err := h.series.Get(c.Request().Context(), commodity)
	if err != nil {
		h.logger.Error("series load error", xlogger.String("commodity", commodity.String()), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("series unavailable").WithError(err))
	}

	records := series.Records()
	rows := make([]seriesRow, len(records))
	for i, r := range records {
		rows[i] = toRow(r)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"commodity": commodity.String(),
		"rows":      rows,
	})
}

func (h *MarketsHandler) DataByDate(c echo.Context) error {
	commodity, date, appErr := parseCommodityDate(c)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	series, err := h.series.Get(c.Request().Context(), commodity)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("series unavailable").WithError(err))
	}
	record, err := series.Resolve(date)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no data loaded").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"requested": util.FormatDate(date),
		"resolved":  util.FormatDate(record.Date),
		"row":       toRow(record),
	})
}

func (h *MarketsHandler) Signal(c echo.Context) error {
	commodity, date, appErr := parseCommodityDate(c)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	sig, err := h.signals.Build(c.Request().Context(), commodity, date)
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no data loaded").WithError(err))
		}
		h.logger.Error("signal build error",
			xlogger.String("commodity", commodity.String()),
			xlogger.String("date", util.FormatDate(date)),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("signal unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"date":   util.FormatDate(sig.Date),
		"signal": sig,
	})
}

func (h *MarketsHandler) News(c echo.Context) error {
	commodity, date, appErr := parseCommodityDate(c)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	articles := h.signals.Articles(c.Request().Context(), commodity, date)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"date":     util.FormatDate(date),
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *MarketsHandler) Decision(c echo.Context) error {
	commodity, date, appErr := parseCommodityDate(c)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	pair, err := engine.DefaultThresholds(commodity)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("unknown commodity").WithError(err))
	}
	pair = overrideThresholds(c, pair)
	en := overrideEnablement(c)

	out, err := h.decisions.Decide(c.Request().Context(), commodity, date, pair, en)
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no data loaded").WithError(err))
		}
		h.logger.Error("decision error",
			xlogger.String("commodity", commodity.String()),
			xlogger.String("date", util.FormatDate(date)),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, xhttp.InternalError("decision unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"requested": util.FormatDate(out.RequestedDate),
		"resolved":  util.FormatDate(out.ResolvedDate),
		"outcome":   out,
	})
}

// overrideThresholds applies per-field query overrides onto the
// registry defaults. Non-numeric input is coerced to zero, matching
// manual-entry behavior elsewhere.
func overrideThresholds(c echo.Context, pair models.ThresholdPair) models.ThresholdPair {
	set := func(dst *float64, param string) {
		if raw := c.QueryParam(param); raw != "" {
			*dst, _ = util.CoerceFloat(raw)
		}
	}
	set(&pair.Long.Commercials, "long_commercials")
	set(&pair.Long.LargeSpeculators, "long_large")
	set(&pair.Long.SmallSpeculators, "long_small")
	set(&pair.Short.Commercials, "short_commercials")
	set(&pair.Short.LargeSpeculators, "short_large")
	set(&pair.Short.SmallSpeculators, "short_small")
	return pair
}

func overrideEnablement(c echo.Context) models.IndexEnablement {
	en := models.AllEnabled()
	set := func(dst *bool, param string) {
		if raw := c.QueryParam(param); raw == "false" || raw == "0" {
			*dst = false
		}
	}
	set(&en.Commercials, "enable_commercials")
	set(&en.LargeSpeculators, "enable_large")
	set(&en.SmallSpeculators, "enable_small")
	return en
}

func parseCommodity(c echo.Context) (models.Commodity, *xhttp.AppError) {
	commodity := models.Commodity(c.Param("commodity"))
	if !commodity.IsValid() {
		return "", xhttp.NotFoundErrorf("unknown commodity %q", c.Param("commodity"))
	}
	return commodity, nil
}

func parseCommodityDate(c echo.Context) (models.Commodity, time.Time, *xhttp.AppError) {
	commodity, appErr := parseCommodity(c)
	if appErr != nil {
		return "", time.Time{}, appErr
	}
	date, ok := util.ParseDate(c.Param("date"))
	if !ok {
		return "", time.Time{}, xhttp.BadRequestErrorf("unparseable date %q", c.Param("date"))
	}
	return commodity, util.Day(date), nil
}
