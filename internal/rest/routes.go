package rest

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/campus-reading/internal/reading"
)

const (
	noticesPath  = "/notices"
	reviewsPath  = "/reviews"
	classicsPath = "/classics"
	programsPath = "/programs"
	statsPath    = "/admin/stats"

	likePath = "/:id/like"
	joinPath = "/:id/join"

	healthPath     = "/health"
	swaggerDocPath = "/swagger/doc.json"
)

// RegisterRoutes builds the echo instance serving the REST API.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.requestLogger())
	e.Use(middleware.CORS())

	e.GET(healthPath, h.Health)
	e.GET(swaggerDocPath, h.SwaggerDoc)

	h.registerAPIRoutes(e.Group(h.basePath))

	return e
}

func (h *Handler) registerAPIRoutes(api *echo.Group) {
	notices := &resource[reading.Notice, reading.NoticeFilter, reading.NoticePatch]{
		h:   h,
		svc: h.m.Notices,
		newQuery: func() listRequest[reading.NoticeFilter] {
			return &NoticesRequest{}
		},
	}
	notices.register(api.Group(noticesPath))

	reviews := &resource[reading.Review, reading.ReviewFilter, reading.ReviewPatch]{
		h:   h,
		svc: h.m.Reviews,
		newQuery: func() listRequest[reading.ReviewFilter] {
			return &ReviewsRequest{}
		},
	}
	reviewsGroup := api.Group(reviewsPath)
	reviews.register(reviewsGroup)
	reviewsGroup.POST(likePath, reviews.action(h.m.Reviews.Like))

	classics := &resource[reading.Classic, reading.ClassicFilter, reading.ClassicPatch]{
		h:   h,
		svc: h.m.Classics,
		newQuery: func() listRequest[reading.ClassicFilter] {
			return &ClassicsRequest{}
		},
	}
	classics.register(api.Group(classicsPath))

	programs := &resource[reading.Program, reading.ProgramFilter, reading.ProgramPatch]{
		h:   h,
		svc: h.m.Programs,
		newQuery: func() listRequest[reading.ProgramFilter] {
			return &ProgramsRequest{}
		},
	}
	programsGroup := api.Group(programsPath)
	programs.register(programsGroup)
	programsGroup.POST(joinPath, programs.action(h.m.Programs.Join))

	api.GET(statsPath, h.Stats)
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.LogAttrs(c.Request().Context(), slog.LevelInfo, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}
