package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/campus-reading/internal/reading"
)

type Handler struct {
	m        *reading.Manager
	log      *slog.Logger
	basePath string
}

func NewHandler(m *reading.Manager, log *slog.Logger, basePath string) *Handler {
	return &Handler{
		m:        m,
		log:      log,
		basePath: strings.TrimRight(basePath, "/"),
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.DebugContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	}

	return c.JSON(statusCode, StatusResponse{Success: false, Error: message})
}

// Stats handles GET /admin/stats
// @Summary Collection sizes
// @Description Returns the number of records in every collection
// @Tags admin
// @Produce json
// @Success 200 {object} reading.Stats
// @Failure 500 {object} rest.StatusResponse
// @Router /admin/stats [get]
func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.m.Stats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api documentation is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// collection is what a resource service offers to the transport.
type collection[T any, F any, P any] interface {
	Name() string
	List(ctx context.Context, filter F, req reading.PageRequest) (reading.Page[T], error)
	ByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id int, patch P) (*T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// listRequest is a bound list query: pagination plus the collection filter.
type listRequest[F any] interface {
	Pagination() reading.PageRequest
	Filter() F
}

// resource serves one collection endpoint and its item endpoints.
type resource[T any, F any, P any] struct {
	h        *Handler
	svc      collection[T, F, P]
	newQuery func() listRequest[F]
}

// list handles GET /{resource}
// @Summary List records
// @Description Filters, orders and paginates a collection. Notices are ordered important-first, then by date descending.
// @Tags collections
// @Produce json
// @Param resource path string true "notices, reviews, classics or programs"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Param search query string false "Case-sensitive substring search"
// @Param category query string false "Exact category (classics, programs)"
// @Param year query int false "Exact year (classics)"
// @Param type query string false "Review type: program or ogeoseo (reviews)"
// @Param programId query int false "Program reference (reviews)"
// @Param status query string false "Program status (programs)"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} rest.StatusResponse
// @Router /{resource} [get]
func (r *resource[T, F, P]) list(c echo.Context) error {
	query := r.newQuery()
	if err := c.Bind(query); err != nil {
		return r.h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	req := query.Pagination()
	if err := req.Validate(); err != nil {
		return r.h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	result, err := r.svc.List(c.Request().Context(), query.Filter(), req)
	if err != nil {
		return r.h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, result)
}

// get handles GET /{resource}/{id}
// @Summary Get record by ID
// @Description Returns a single record. Reading a notice increments its view counter.
// @Tags collections
// @Produce json
// @Param resource path string true "notices, reviews, classics or programs"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} rest.StatusResponse
// @Router /{resource}/{id} [get]
func (r *resource[T, F, P]) get(c echo.Context) error {
	return r.item(c, r.svc.ByID)
}

// create handles POST /{resource}
// @Summary Create record
// @Description Stores a new record. The server assigns id and resets counters.
// @Tags collections
// @Accept json
// @Produce json
// @Param resource path string true "notices, reviews, classics or programs"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} rest.StatusResponse
// @Router /{resource} [post]
func (r *resource[T, F, P]) create(c echo.Context) error {
	var draft T
	if err := decodeBody(c, &draft); err != nil {
		return r.h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	created, err := r.svc.Create(c.Request().Context(), draft)
	if err != nil {
		return r.h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, ItemResponse[T]{Success: true, Data: created})
}

// update handles PUT /{resource}/{id}
// @Summary Update record
// @Description Replaces the fields present in the body. id and counters are ignored, unknown fields are rejected.
// @Tags collections
// @Accept json
// @Produce json
// @Param resource path string true "notices, reviews, classics or programs"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} rest.StatusResponse
// @Router /{resource}/{id} [put]
func (r *resource[T, F, P]) update(c echo.Context) error {
	var patch P
	if err := decodeBody(c, &patch); err != nil {
		return r.h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	return r.item(c, func(ctx context.Context, id int) (*T, error) {
		return r.svc.Update(ctx, id, patch)
	})
}

// remove handles DELETE /{resource}/{id}
// @Summary Delete record
// @Tags collections
// @Produce json
// @Param resource path string true "notices, reviews, classics or programs"
// @Param id path int true "Record ID"
// @Success 200 {object} rest.StatusResponse
// @Failure 400,404,500 {object} rest.StatusResponse
// @Router /{resource}/{id} [delete]
func (r *resource[T, F, P]) remove(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return r.h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ok, err := r.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return r.h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if !ok {
		return r.notFound(c, id)
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}

// item resolves the id path parameter, runs fn and writes the record or a 404.
func (r *resource[T, F, P]) item(c echo.Context, fn func(ctx context.Context, id int) (*T, error)) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return r.h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	rec, err := fn(c.Request().Context(), id)
	if err != nil {
		return r.h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if rec == nil {
		return r.notFound(c, id)
	}

	return c.JSON(http.StatusOK, ItemResponse[T]{Success: true, Data: *rec})
}

func (r *resource[T, F, P]) action(fn func(ctx context.Context, id int) (*T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		return r.item(c, fn)
	}
}

func (r *resource[T, F, P]) notFound(c echo.Context, id int) error {
	msg := r.svc.Name() + " not found"
	return r.h.handleError(c, fmt.Errorf("%s %d", msg, id), http.StatusNotFound, msg)
}

func (r *resource[T, F, P]) register(g *echo.Group) {
	g.GET("", r.list)
	g.POST("", r.create)
	g.GET("/:id", r.get)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.remove)
}

var (
	errEmptyBody    = errors.New("empty request body")
	errTrailingData = errors.New("unexpected data after JSON body")
)

func decodeBody(c echo.Context, v any) error {
	if c.Request().Body == nil || c.Request().Body == http.NoBody {
		return errEmptyBody
	}

	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}
