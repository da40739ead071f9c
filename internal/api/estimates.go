package api

import (
	"fmt"
	"net/http"

	"github.com/Spok95/project-assistant/internal/domain/estimate"
	"github.com/Spok95/project-assistant/internal/infra/report"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type estimateLine struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Required  int             `json:"required"`
	OnHand    int             `json:"on_hand"`
	Missing   int             `json:"missing"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Cost      decimal.Decimal `json:"cost"`
}

type estimateResponse struct {
	Kind  string          `json:"kind"`
	Area  float64         `json:"area"`
	Mode  string          `json:"mode,omitempty"`
	Lines []estimateLine  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func toEstimateResponse(e estimate.Estimate) estimateResponse {
	out := estimateResponse{
		Kind:  e.Kind,
		Area:  e.Area,
		Mode:  string(e.Mode),
		Lines: make([]estimateLine, 0, len(e.Lines)),
		Total: e.Total,
	}
	for _, l := range e.Lines {
		out.Lines = append(out.Lines, estimateLine{
			Name:      l.Name,
			Unit:      string(l.Unit),
			Required:  l.Required,
			OnHand:    l.OnHand,
			Missing:   l.Missing,
			UnitPrice: l.UnitPrice,
			Cost:      l.Cost,
		})
	}
	return out
}

func (a *API) plaster(c echo.Context) (estimate.Estimate, error) {
	return a.estimates.PlasterEstimate(c.Request().Context(), uidOf(c), c.QueryParam("area"), c.QueryParam("mode"))
}

func (a *API) paint(c echo.Context) (estimate.Estimate, error) {
	return a.estimates.PaintEstimate(c.Request().Context(), uidOf(c), c.QueryParam("area"))
}

func (a *API) handlePlaster(c echo.Context) error {
	e, err := a.plaster(c)
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEstimateResponse(e))
}

func (a *API) handlePaint(c echo.Context) error {
	e, err := a.paint(c)
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEstimateResponse(e))
}

func (a *API) handlePlasterXLSX(c echo.Context) error {
	e, err := a.plaster(c)
	if err != nil {
		return a.fail(c, err)
	}
	return a.sendXLSX(c, e, fmt.Sprintf("Plaster (%s), %g m2", e.Mode, e.Area))
}

func (a *API) handlePaintXLSX(c echo.Context) error {
	e, err := a.paint(c)
	if err != nil {
		return a.fail(c, err)
	}
	return a.sendXLSX(c, e, fmt.Sprintf("Paint, %g m2", e.Area))
}

func (a *API) sendXLSX(c echo.Context, e estimate.Estimate, title string) error {
	data, err := report.EstimateXLSX(title, e.Result)
	if err != nil {
		return a.fail(c, err)
	}
	fileName := fmt.Sprintf("%s_%s.xlsx", e.Kind, a.now().In(a.loc).Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
