// internal/empreendimento/handler.go
package empreendimento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /construtoras/{id}/empreendimentos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	construtoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de construtora inválido", http.StatusBadRequest)
		return
	}

	var e Empreendimento
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	e.ConstrutoraID = uint(construtoraID)

	if err := h.Repo.Create(&e); err != nil {
		http.Error(w, "Erro ao inserir empreendimento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// GET /construtoras/{id}/empreendimentos
func (h *Handler) ListByConstrutora(w http.ResponseWriter, r *http.Request) {
	construtoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de construtora inválido", http.StatusBadRequest)
		return
	}

	es, err := h.Repo.FindByConstrutora(uint(construtoraID))
	if err != nil {
		http.Error(w, "Erro ao buscar empreendimentos", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(es)
}

// GET /empreendimentos
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	es, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao buscar empreendimentos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(es)
}

// GET /empreendimentos/{eid}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	eid, err := strconv.Atoi(mux.Vars(r)["eid"])
	if err != nil {
		http.Error(w, "ID de empreendimento inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repo.FindByID(uint(eid))
	if err != nil {
		http.Error(w, "Empreendimento não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// PUT /empreendimentos/{eid}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	eid, err := strconv.Atoi(mux.Vars(r)["eid"])
	if err != nil {
		http.Error(w, "ID de empreendimento inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repo.FindByID(uint(eid))
	if err != nil {
		http.Error(w, "Empreendimento não encontrado", http.StatusNotFound)
		return
	}

	var payload Empreendimento
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	e.Nome = payload.Nome
	e.Cidade = payload.Cidade
	e.UF = payload.UF
	e.Status = payload.Status
	e.TotalUnidades = payload.TotalUnidades
	e.ValorMedio = payload.ValorMedio

	if err := h.Repo.Update(e); err != nil {
		http.Error(w, "Erro ao atualizar empreendimento", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// DELETE /empreendimentos/{eid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	eid, err := strconv.Atoi(mux.Vars(r)["eid"])
	if err != nil {
		http.Error(w, "ID de empreendimento inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repo.FindByID(uint(eid))
	if err != nil {
		http.Error(w, "Empreendimento não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(e); err != nil {
		http.Error(w, "Erro ao deletar empreendimento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
