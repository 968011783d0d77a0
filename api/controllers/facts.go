package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocksight/stocksight-backend/api/responses"
	"github.com/stocksight/stocksight-backend/api/validators"
	"github.com/stocksight/stocksight-backend/internal/facts"
	"github.com/stocksight/stocksight-backend/pkg/config"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/logger"
)

type productFactRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Month     string          `json:"month" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

func (req productFactRequest) toInput() facts.ProductFactInput {
	return facts.ProductFactInput{
		ProductID: req.ProductID,
		Month:     req.Month,
		Amount:    req.Amount,
	}
}

type fixedCostRequest struct {
	CostName string          `json:"cost_name" validate:"required"`
	Month    string          `json:"month" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

func (req fixedCostRequest) toInput() facts.FixedCostInput {
	return facts.FixedCostInput{
		CostName: validators.SanitizeString(req.CostName, 255),
		Month:    req.Month,
		Amount:   req.Amount,
	}
}

// The five monthly planning resources share request handling; only the
// service method differs per route.
type (
	productFactCreateFunc func(ctx context.Context, userID uuid.UUID, input facts.ProductFactInput) (*facts.ProductFactDTO, error)
	productFactUpdateFunc func(ctx context.Context, userID, id uuid.UUID, input facts.ProductFactInput) (*facts.ProductFactDTO, error)
	productFactDeleteFunc func(ctx context.Context, userID, id uuid.UUID) error
	productFactGetFunc    func(ctx context.Context, id uuid.UUID) (*facts.ProductFactDTO, error)
	productFactListFunc   func(ctx context.Context, filters facts.ProductFactFilters) ([]facts.ProductFactDTO, error)
)

func productFactCreate(create productFactCreateFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if create == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body productFactRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := create(r.Context(), userID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func productFactUpdate(update productFactUpdateFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if update == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body productFactRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := update(r.Context(), userID, id, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

func productFactDelete(remove productFactDeleteFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if remove == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := remove(r.Context(), userID, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func productFactGet(get productFactGetFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if get == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

func productFactList(list productFactListFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if list == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		productID, err := validators.ParseQueryUUID(r, "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dtos, err := list(r.Context(), facts.ProductFactFilters{
			ProductID: productID,
			Month:     r.URL.Query().Get("month"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dtos)
	}
}

func SalesTargetCreate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactCreateFunc
	if svc != nil {
		fn = svc.CreateSalesTarget
	}
	return productFactCreate(fn, logg)
}

func SalesTargetUpdate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactUpdateFunc
	if svc != nil {
		fn = svc.UpdateSalesTarget
	}
	return productFactUpdate(fn, logg)
}

func SalesTargetDelete(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactDeleteFunc
	if svc != nil {
		fn = svc.DeleteSalesTarget
	}
	return productFactDelete(fn, logg)
}

func SalesTargetGet(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactGetFunc
	if svc != nil {
		fn = svc.GetSalesTarget
	}
	return productFactGet(fn, logg)
}

func SalesTargetList(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactListFunc
	if svc != nil {
		fn = svc.ListSalesTargets
	}
	return productFactList(fn, logg)
}

func ActualSalesCreate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactCreateFunc
	if svc != nil {
		fn = svc.CreateActualSales
	}
	return productFactCreate(fn, logg)
}

func ActualSalesUpdate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactUpdateFunc
	if svc != nil {
		fn = svc.UpdateActualSales
	}
	return productFactUpdate(fn, logg)
}

func ActualSalesDelete(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactDeleteFunc
	if svc != nil {
		fn = svc.DeleteActualSales
	}
	return productFactDelete(fn, logg)
}

func ActualSalesGet(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactGetFunc
	if svc != nil {
		fn = svc.GetActualSales
	}
	return productFactGet(fn, logg)
}

func ActualSalesList(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactListFunc
	if svc != nil {
		fn = svc.ListActualSales
	}
	return productFactList(fn, logg)
}

func ProductCostCreate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactCreateFunc
	if svc != nil {
		fn = svc.CreateProductCost
	}
	return productFactCreate(fn, logg)
}

func ProductCostUpdate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactUpdateFunc
	if svc != nil {
		fn = svc.UpdateProductCost
	}
	return productFactUpdate(fn, logg)
}

func ProductCostDelete(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactDeleteFunc
	if svc != nil {
		fn = svc.DeleteProductCost
	}
	return productFactDelete(fn, logg)
}

func ProductCostGet(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactGetFunc
	if svc != nil {
		fn = svc.GetProductCost
	}
	return productFactGet(fn, logg)
}

func ProductCostList(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactListFunc
	if svc != nil {
		fn = svc.ListProductCosts
	}
	return productFactList(fn, logg)
}

func SalesPriceCreate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactCreateFunc
	if svc != nil {
		fn = svc.CreateSalesPrice
	}
	return productFactCreate(fn, logg)
}

func SalesPriceUpdate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactUpdateFunc
	if svc != nil {
		fn = svc.UpdateSalesPrice
	}
	return productFactUpdate(fn, logg)
}

func SalesPriceDelete(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactDeleteFunc
	if svc != nil {
		fn = svc.DeleteSalesPrice
	}
	return productFactDelete(fn, logg)
}

func SalesPriceGet(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactGetFunc
	if svc != nil {
		fn = svc.GetSalesPrice
	}
	return productFactGet(fn, logg)
}

func SalesPriceList(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	var fn productFactListFunc
	if svc != nil {
		fn = svc.ListSalesPrices
	}
	return productFactList(fn, logg)
}

// FixedCostCreate registers a monthly overhead row.
func FixedCostCreate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body fixedCostRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.CreateFixedCost(r.Context(), userID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// FixedCostUpdate replaces a monthly overhead row.
func FixedCostUpdate(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body fixedCostRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateFixedCost(r.Context(), userID, id, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// FixedCostDelete removes a monthly overhead row.
func FixedCostDelete(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteFixedCost(r.Context(), userID, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// FixedCostGet returns one monthly overhead row by ID.
func FixedCostGet(svc facts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.GetFixedCost(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// FixedCostList returns a page of overhead rows filtered by name and month.
func FixedCostList(svc facts.Service, cfg config.AuditConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "facts service unavailable"))
			return
		}

		params, err := parsePageParams(r, cfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := facts.FixedCostFilters{
			CostName: r.URL.Query().Get("cost_name"),
			Month:    r.URL.Query().Get("month"),
		}

		result, err := svc.ListFixedCosts(r.Context(), filters, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePaged(w, result.Costs, result.Pagination)
	}
}
