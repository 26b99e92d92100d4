package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"salsac-engine/internal/engine"
	"salsac-engine/internal/model"
	"salsac-engine/internal/regimeregistry"
	"salsac-engine/internal/report"
	"salsac-engine/internal/schedule"
	"salsac-engine/internal/taxmodel"
)

type Handler struct {
	registry *regimeregistry.Registry
	log      logrus.FieldLogger
}

func New(registry *regimeregistry.Registry, log logrus.FieldLogger) *Handler {
	return &Handler{registry: registry, log: log}
}

// Route dispatches a request and logs its outcome.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case "/calculate":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.HandleCalculation(ctx)
		}
	case "/report":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.HandleReport(ctx)
		}
	case "/defaults":
		if h.allow(ctx, fasthttp.MethodGet) {
			h.HandleDefaults(ctx)
		}
	case "/healthz":
		if h.allow(ctx, fasthttp.MethodGet) {
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		}
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.log.WithFields(logrus.Fields{
		"method":      string(ctx.Method()),
		"path":        string(ctx.Path()),
		"status":      ctx.Response.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("request handled")
}

func (h *Handler) allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) != method {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

// decode reads the calculation request and runs the engine on it. It returns
// the regime the calculation used.
func (h *Handler) decode(ctx *fasthttp.RequestCtx) (*model.CalculationResponse, taxmodel.Regime, bool) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, taxmodel.Regime{}, false
	}

	regime := h.registry.Get(req.TaxYear)
	resp := engine.Process(&req, regime)
	h.log.WithFields(logrus.Fields{
		"calculation_id": resp.CalculationMetadata.CalculationID,
		"tenant_id":      resp.CalculationMetadata.TenantID,
		"tax_year":       resp.CalculationMetadata.TaxYear,
		"outcome":        resp.CalculationMetadata.CalculationOutcome,
	}).Debug("calculation processed")
	return resp, regime, true
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	resp, _, ok := h.decode(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) HandleReport(ctx *fasthttp.RequestCtx) {
	resp, regime, ok := h.decode(ctx)
	if !ok {
		return
	}

	res := resp.CalculationResult
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, model.ErrorResponse{
			Status:   fasthttp.StatusUnprocessableEntity,
			Message:  "No schedule could be produced",
			Messages: res.Messages,
		})
		return
	}

	sched := &schedule.Schedule{Months: res.Schedule, Summary: *res.Summary}
	pdf, err := report.GenerateSchedulePDF(regime, *res.Inputs, sched)
	if err != nil {
		h.log.WithError(err).Error("report generation failed")
		writeError(ctx, fasthttp.StatusInternalServerError, "Report generation failed")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/pdf")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="salary-sacrifice-schedule.pdf"`)
	ctx.SetBody(pdf)
}

func (h *Handler) HandleDefaults(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, engine.Defaults(h.registry.Get("")))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding response failed")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
