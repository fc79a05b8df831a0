package controllers

import (
	"net/http"

	"github.com/sikawofie/shop-backend/api/responses"
	"github.com/sikawofie/shop-backend/api/validators"
	"github.com/sikawofie/shop-backend/internal/stylist"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
	"github.com/sikawofie/shop-backend/pkg/logger"
)

type stylistAdvicePayload struct {
	Query   string         `json:"query" validate:"required"`
	History []stylist.Turn `json:"history"`
}

// StylistAdvice answers an outfit question. Upstream model failures never
// surface as errors; the reply text degrades instead.
func StylistAdvice(svc stylist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stylist service unavailable"))
			return
		}

		var payload stylistAdvicePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		reply := svc.Advice(ctx, payload.Query, payload.History)
		responses.WriteSuccess(w, map[string]string{"reply": reply})
	}
}
