package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo's Validate hook.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator with the order-total rule
// registered.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterStructValidation(validatePlaceOrderTotals, PlaceOrderRequest{})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Failures surface as 400s.
func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// validatePlaceOrderTotals enforces the money invariants on intake: every
// line total equals unit price times quantity, the subtotal equals the sum
// of line totals, and total equals subtotal plus tax.
func validatePlaceOrderTotals(sl validator.StructLevel) {
	req := sl.Current().Interface().(PlaceOrderRequest)

	var subtotal int64
	for i, item := range req.Items {
		lineTotal := item.UnitPriceCents * int64(item.Quantity)
		if item.LineTotalCents != lineTotal {
			sl.ReportError(req.Items[i].LineTotalCents, "line_total_cents", "LineTotalCents",
				"linetotal", "")
		}
		subtotal += lineTotal
	}

	if req.SubtotalCents != subtotal {
		sl.ReportError(req.SubtotalCents, "subtotal_cents", "SubtotalCents", "subtotal", "")
	}
	if req.TotalCents != req.SubtotalCents+req.TaxCents {
		sl.ReportError(req.TotalCents, "total_cents", "TotalCents", "total", "")
	}
}
