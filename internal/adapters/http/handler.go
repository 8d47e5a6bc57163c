package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/application"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/contracts"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
)

type Handler struct{ service *application.Service }

func NewHandler(service *application.Service) *Handler { return &Handler{service: service} }

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.Snapshot(r.Context())
	if err != nil {
		code, c := mapDomainError(err)
		writeError(w, code, c, err.Error(), requestIDFromContext(r.Context()))
		return
	}
	out := make([]contracts.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		resp, err := toAccountResponse(account)
		if err != nil {
			code, c := mapDomainError(err)
			writeError(w, code, c, err.Error(), requestIDFromContext(r.Context()))
			return
		}
		out = append(out, resp)
	}
	writeSuccess(w, http.StatusOK, "accounts", out)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	client, err := strconv.ParseUint(chi.URLParam(r, "client"), 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "client must be a 16-bit unsigned integer", requestIDFromContext(r.Context()))
		return
	}
	account, err := h.service.GetAccount(r.Context(), domain.ClientID(client))
	if err != nil {
		code, c := mapDomainError(err)
		writeError(w, code, c, err.Error(), requestIDFromContext(r.Context()))
		return
	}
	resp, err := toAccountResponse(account)
	if err != nil {
		code, c := mapDomainError(err)
		writeError(w, code, c, err.Error(), requestIDFromContext(r.Context()))
		return
	}
	writeSuccess(w, http.StatusOK, "account", resp)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := strconv.ParseUint(chi.URLParam(r, "tx"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "tx must be a 32-bit unsigned integer", requestIDFromContext(r.Context()))
		return
	}
	record, err := h.service.GetTransaction(r.Context(), domain.TransactionID(tx))
	if err != nil {
		code, c := mapDomainError(err)
		writeError(w, code, c, err.Error(), requestIDFromContext(r.Context()))
		return
	}
	writeSuccess(w, http.StatusOK, "transaction", contracts.TransactionResponse{
		Tx:           uint32(record.ID),
		Client:       uint16(record.Client),
		Kind:         string(record.Kind),
		Amount:       record.Amount.String(),
		DisputeState: string(record.State),
	})
}

func toAccountResponse(account domain.Account) (contracts.AccountResponse, error) {
	total, err := account.Total()
	if err != nil {
		return contracts.AccountResponse{}, err
	}
	return contracts.AccountResponse{
		Client:    uint16(account.Client),
		Available: account.Available.String(),
		Held:      account.Held.String(),
		Total:     total.String(),
		Locked:    account.Locked,
	}, nil
}
