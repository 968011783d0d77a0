package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/api/responses"
	"github.com/stocksight/stocksight-backend/api/validators"
	customer "github.com/stocksight/stocksight-backend/internal/customers"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/logger"
)

type customerRequest struct {
	CustomerName      string           `json:"customer_name" validate:"required"`
	CustomerCode      string           `json:"customer_code" validate:"required,min=2,max=50"`
	Address           *string          `json:"address,omitempty"`
	CityOrDistrict    *string          `json:"city_or_district,omitempty"`
	SalesRep          string           `json:"sales_rep" validate:"required"`
	Country           *string          `json:"country,omitempty"`
	RegionOrState     *string          `json:"region_or_state,omitempty"`
	TelephoneNumber   *string          `json:"telephone_number,omitempty" validate:"omitempty,phonenumber"`
	Email             *string          `json:"email,omitempty" validate:"omitempty,email"`
	ContactPerson     *string          `json:"contact_person,omitempty"`
	PaymentTermsLimit *decimal.Decimal `json:"payment_terms_limit,omitempty" validate:"omitempty,gte=0"`
	BalanceRiskLimit  *decimal.Decimal `json:"balance_risk_limit,omitempty" validate:"omitempty,gte=0"`
}

func (req customerRequest) toInput() customer.CustomerInput {
	return customer.CustomerInput{
		CustomerName:      validators.SanitizeString(req.CustomerName, 255),
		CustomerCode:      validators.SanitizeString(req.CustomerCode, 50),
		Address:           req.Address,
		CityOrDistrict:    req.CityOrDistrict,
		SalesRep:          validators.SanitizeString(req.SalesRep, 100),
		Country:           req.Country,
		RegionOrState:     req.RegionOrState,
		TelephoneNumber:   req.TelephoneNumber,
		Email:             req.Email,
		ContactPerson:     req.ContactPerson,
		PaymentTermsLimit: req.PaymentTermsLimit,
		BalanceRiskLimit:  req.BalanceRiskLimit,
	}
}

// CustomerCreate registers a new customer account.
func CustomerCreate(svc customer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body customerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), userID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// CustomerUpdate replaces an existing customer account.
func CustomerUpdate(svc customer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body customerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), userID, customerID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// CustomerDelete removes a customer account.
func CustomerDelete(svc customer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// CustomerGet returns one customer by ID.
func CustomerGet(svc customer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		customerID, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// CustomerList returns customers, optionally filtered by sales rep or search.
func CustomerList(svc customer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		filters := customer.ListFilters{
			Search:   r.URL.Query().Get("search"),
			SalesRep: r.URL.Query().Get("sales_rep"),
		}

		dtos, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dtos)
	}
}

// CustomerRiskAnalysis returns customers ranked by balance risk exposure.
func CustomerRiskAnalysis(svc customer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		dtos, err := svc.RiskAnalysis(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dtos)
	}
}
