package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/maprojet/compte-client/internal/models"
	"github.com/sirupsen/logrus"
)

// Handler serves the compte resource in both wire formats. Each request
// negotiates its own format: Accept for responses, Content-Type for request
// bodies, JSON when neither says otherwise.
type Handler struct {
	store *Store
	log   *logrus.Logger
}

// NewHandler initializes a handler over a store.
func NewHandler(store *Store, log *logrus.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// Router wires the five compte routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/comptes", h.ListComptes).Methods("GET")
	r.HandleFunc("/comptes", h.CreateCompte).Methods("POST")
	r.HandleFunc("/comptes/{id}", h.GetCompte).Methods("GET")
	r.HandleFunc("/comptes/{id}", h.UpdateCompte).Methods("PUT")
	r.HandleFunc("/comptes/{id}", h.DeleteCompte).Methods("DELETE")
	return r
}

func wantsXML(header string) bool {
	return strings.Contains(strings.ToLower(header), "xml")
}

// ListComptes returns every account: a bare JSON array, or a <comptes>
// envelope when the caller accepts XML.
func (h *Handler) ListComptes(w http.ResponseWriter, r *http.Request) {
	accounts := h.store.List()
	if wantsXML(r.Header.Get("Accept")) {
		data, err := (&models.AccountList{Comptes: accounts}).MarshalXML()
		if err != nil {
			h.log.Errorf("Failed to render account list: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write(data)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(accounts)
}

// GetCompte returns one account or 404.
func (h *Handler) GetCompte(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}
	account, ok := h.store.Get(id)
	if !ok {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}
	h.writeAccount(w, r, http.StatusOK, &account)
}

// CreateCompte stores a new account and echoes it back with the assigned id.
func (h *Handler) CreateCompte(w http.ResponseWriter, r *http.Request) {
	account, err := readAccount(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid account payload: %v", err), http.StatusBadRequest)
		return
	}
	created := h.store.Create(*account)
	h.log.Infof("Account created: id=%d type=%s", *created.ID, created.Type)
	h.writeAccount(w, r, http.StatusCreated, &created)
}

// UpdateCompte replaces an existing account.
func (h *Handler) UpdateCompte(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}
	account, err := readAccount(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid account payload: %v", err), http.StatusBadRequest)
		return
	}
	updated, ok := h.store.Update(id, *account)
	if !ok {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}
	h.log.Infof("Account updated: id=%d", id)
	h.writeAccount(w, r, http.StatusOK, &updated)
}

// DeleteCompte removes an account. Success is an empty 204.
func (h *Handler) DeleteCompte(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}
	if !h.store.Delete(id) {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}
	h.log.Infof("Account deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func readAccount(r *http.Request) (*models.Account, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if wantsXML(r.Header.Get("Content-Type")) {
		return models.UnmarshalAccountXML(body)
	}
	account := &models.Account{}
	if err := json.Unmarshal(body, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (h *Handler) writeAccount(w http.ResponseWriter, r *http.Request, status int, account *models.Account) {
	if wantsXML(r.Header.Get("Accept")) {
		data, err := account.MarshalXML()
		if err != nil {
			h.log.Errorf("Failed to render account: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		w.Write(data)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(account)
}
