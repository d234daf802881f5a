package handler

import (
	"net/http"

	"github.com/lendq/loan-intake/internal/config"
	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/internal/service"
	"github.com/lendq/loan-intake/pkg/response"
)

type LoanApplicationHandler struct {
	service        *service.LoanApplicationService
	exposeInternal bool
}

func NewLoanApplicationHandler(service *service.LoanApplicationService, cfg *config.Config) *LoanApplicationHandler {
	return &LoanApplicationHandler{
		service:        service,
		exposeInternal: !cfg.IsProduction(),
	}
}

func (h *LoanApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLoanApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	app, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Created(w, app)
}

func (h *LoanApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "applicationId")
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	app, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Success(w, app)
}

func (h *LoanApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "applicationId")
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.NoContent(w)
}

func (h *LoanApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	result, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Success(w, result)
}

// ListByCustomer serves a customer's applications, failing with not-found
// when the customer itself does not exist.
func (h *LoanApplicationHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parsePathID(r, "customerId")
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	page, pageSize, err := parsePageParams(r)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	result, err := h.service.ListByCustomer(r.Context(), customerID, page, pageSize)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Success(w, result)
}
