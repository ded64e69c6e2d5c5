package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/application/usecase"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/pkg/auth"
)

// Handler exposes the credit approval use cases over HTTP.
type Handler struct {
	register    *usecase.RegisterCustomerUseCase
	eligibility *usecase.CheckEligibilityUseCase
	createLoan  *usecase.CreateLoanUseCase
	getLoan     *usecase.GetLoanUseCase
	listLoans   *usecase.ListCustomerLoansUseCase
	installment *usecase.ComputeInstallmentUseCase
	logger      *slog.Logger
}

// NewHandler wires the use cases into an HTTP handler.
func NewHandler(
	register *usecase.RegisterCustomerUseCase,
	eligibility *usecase.CheckEligibilityUseCase,
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListCustomerLoansUseCase,
	installment *usecase.ComputeInstallmentUseCase,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		register:    register,
		eligibility: eligibility,
		createLoan:  createLoan,
		getLoan:     getLoan,
		listLoans:   listLoans,
		installment: installment,
		logger:      logger,
	}
}

// Router builds the service routes. Mutating routes require a valid Bearer
// token carrying an api-client or operator role; read-only routes are open.
func (h *Handler) Router(health *HealthHandler, jwtSvc *auth.JWTService) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging(h.logger))

	health.RegisterRoutes(r)

	r.HandleFunc("/check-eligibility", h.handleCheckEligibility).Methods(http.MethodPost)
	r.HandleFunc("/compute-installment", h.handleComputeInstallment).Methods(http.MethodPost)
	r.HandleFunc("/view-loan/{loan_id}", h.handleViewLoan).Methods(http.MethodGet)
	r.HandleFunc("/view-loans/{customer_id}", h.handleViewLoans).Methods(http.MethodGet)

	protected := r.PathPrefix("/").Subrouter()
	protected.Use(auth.HTTPMiddleware(jwtSvc))
	protected.Handle("/register",
		auth.RequireRole(http.HandlerFunc(h.handleRegister), auth.RoleAPIClient, auth.RoleOperator),
	).Methods(http.MethodPost)
	protected.Handle("/create-loan",
		auth.RequireRole(http.HandlerFunc(h.handleCreateLoan), auth.RoleAPIClient, auth.RoleOperator),
	).Methods(http.MethodPost)

	return r
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.register.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req dto.EvaluateLoanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.eligibility.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.EvaluateLoanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.createLoan.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if resp.Approved {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

func (h *Handler) handleViewLoan(w http.ResponseWriter, r *http.Request) {
	loanID, ok := pathID(w, r, "loan_id")
	if !ok {
		return
	}

	resp, err := h.getLoan.Execute(r.Context(), loanID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleViewLoans(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customer_id")
	if !ok {
		return
	}

	resp, err := h.listLoans.Execute(r.Context(), customerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleComputeInstallment(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeInstallmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.installment.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeError maps use case errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody(err))
	case errors.Is(err, port.ErrCustomerNotFound), errors.Is(err, port.ErrLoanNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err))
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "internal error",
		})
	}
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "malformed request body",
		})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid " + name,
		})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
