package handler

import (
	"net/http"

	"github.com/lendq/loan-intake/internal/config"
	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/internal/service"
	"github.com/lendq/loan-intake/pkg/response"
)

type CustomerHandler struct {
	service        *service.CustomerService
	exposeInternal bool
}

func NewCustomerHandler(service *service.CustomerService, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{
		service:        service,
		exposeInternal: !cfg.IsProduction(),
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Created(w, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "customerId")
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Success(w, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "customerId")
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	var req domain.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	customer, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Success(w, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "customerId")
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

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
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
