package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"CotSignal/internal/engine"
	"CotSignal/internal/session"
	"CotSignal/internal/usecase"
	xhttp "CotSignal/pkg/http"
	xlogger "CotSignal/pkg/logger"
)

// SessionsHandler serves the reducer-backed session API.
type SessionsHandler struct {
	logger   *xlogger.Logger
	sessions *usecase.SessionUsecase
}

func NewSessionsHandler(logger *xlogger.Logger, sessions *usecase.SessionUsecase) *SessionsHandler {
	return &SessionsHandler{logger: logger, sessions: sessions}
}

func (h *SessionsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/session")
	g.GET("/:id", h.Get)
	g.POST("/:id/actions", h.Apply)
	g.GET("/:id/decision", h.Decision)
}

func (h *SessionsHandler) Get(c echo.Context) error {
	s, err := h.sessions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("session get error", xlogger.String("session", c.Param("id")), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("session unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, s)
}

func (h *SessionsHandler) Apply(c echo.Context) error {
	req := &session.Action{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	next, err := h.sessions.Apply(c.Request().Context(), c.Param("id"), *req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrDateOutOfRange),
			errors.Is(err, session.ErrInvalidDate),
			errors.Is(err, session.ErrInvalidPosture),
			errors.Is(err, session.ErrInvalidIndex),
			errors.Is(err, session.ErrInvalidCommodity),
			errors.Is(err, session.ErrUnknownAction):
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
		default:
			h.logger.Error("session apply error", xlogger.String("session", c.Param("id")), xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.InternalError("session unavailable").WithError(err))
		}
	}
	return xhttp.SuccessResponse(c, next)
}

func (h *SessionsHandler) Decision(c echo.Context) error {
	out, err := h.sessions.Decide(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no data loaded").WithError(err))
		}
		h.logger.Error("session decision error", xlogger.String("session", c.Param("id")), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("decision unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, out)
}
