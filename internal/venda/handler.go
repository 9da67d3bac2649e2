// internal/venda/handler.go
package venda

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/auth"
	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/notificacao"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB       *gorm.DB
	Repo     *Repository
	validate *validator.Validate
}

// NewHandler cria um novo handler de vendas
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Repo:     NewRepository(db),
		validate: validator.New(),
	}
}

// POST /construtoras/{id}/vendas
// Registro de venda fechada; rota de construtora.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	construtoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de construtora inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto vendaCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "campos obrigatórios ausentes: "+err.Error(), http.StatusBadRequest)
		return
	}

	dataVenda := time.Now()
	if dto.DataVenda != "" {
		t, err := time.Parse(time.RFC3339, dto.DataVenda)
		if err != nil {
			http.Error(w, "dataVenda inválida", http.StatusBadRequest)
			return
		}
		dataVenda = t
	}

	statusNota := models.NotaPendente
	if dto.NotaFiscalExigida != nil && !*dto.NotaFiscalExigida {
		statusNota = models.NotaNaoExigida
	}

	v := Venda{
		CorretorID:           dto.CorretorID,
		ConstrutoraID:        uint(construtoraID),
		EmpreendimentoID:     dto.EmpreendimentoID,
		Cliente:              dto.Cliente,
		Unidade:              dto.Unidade,
		Valor:                dto.Valor,
		DataVenda:            dataVenda,
		ComissaoCorretor:     dto.ComissaoCorretor,
		TaxaComissaoCorretor: dto.TaxaComissaoCorretor,
		StatusComissao:       models.ComissaoPendente,
		StatusNotaFiscal:     statusNota,
	}

	if err := h.Repo.Create(&v); err != nil {
		http.Error(w, "Erro ao criar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /corretores/{id}/vendas
func (h *Handler) ListByCorretor(w http.ResponseWriter, r *http.Request) {
	corretorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de corretor inválido", http.StatusBadRequest)
		return
	}

	userID := auth.UsuarioDoContexto(r.Context())
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)
	if perfil == auth.PerfilCorretor && uint(corretorID) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	vendas, err := h.Repo.ListByCorretor(uint(corretorID))
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vendas)
}

// GET /construtoras/{id}/vendas?statusNota=
// Lado construtora: acompanhar as vendas lançadas e as notas recebidas
// (statusNota=Recebida) aguardando conferência.
func (h *Handler) ListByConstrutora(w http.ResponseWriter, r *http.Request) {
	construtoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de construtora inválido", http.StatusBadRequest)
		return
	}

	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)
	if perfil == auth.PerfilConstrutora && auth.UsuarioDoContexto(r.Context()) != uint(construtoraID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	vendas, err := h.Repo.ListByConstrutora(uint(construtoraID))
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}

	statusNota := r.URL.Query().Get("statusNota")
	if statusNota != "" && statusNota != models.FiltroTodos {
		filtradas := make([]Venda, 0, len(vendas))
		for _, v := range vendas {
			if v.StatusNotaFiscal == statusNota {
				filtradas = append(filtradas, v)
			}
		}
		vendas = filtradas
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vendas)
}

// GET /vendas/{vid}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	vid, err := strconv.Atoi(mux.Vars(r)["vid"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(vid))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// POST /vendas/{vid}/nota-fiscal
// Corretor anexa a nota emitida; os quatro campos do payload são obrigatórios
// e nada muda se a validação falhar.
func (h *Handler) AnexarNota(w http.ResponseWriter, r *http.Request) {
	vid, err := strconv.Atoi(mux.Vars(r)["vid"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req EmissaoNotaFiscalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios ausentes: "+err.Error(), http.StatusBadRequest)
		return
	}

	dataEmissao, err := time.Parse(time.RFC3339, req.DataEmissao)
	if err != nil {
		http.Error(w, "dataEmissao inválida", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(vid))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	userID := auth.UsuarioDoContexto(r.Context())
	if v.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := AnexarNotaFiscal(v, req.NumeroNotaFiscal, dataEmissao, req.Arquivo); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	if err := h.Repo.Update(v); err != nil {
		http.Error(w, "Erro ao gravar nota fiscal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// PATCH /vendas/{vid}/nota-fiscal/recusa
// Construtora recusa a nota recebida; o corretor pode reenviar depois.
func (h *Handler) RecusarNota(w http.ResponseWriter, r *http.Request) {
	vid, err := strconv.Atoi(mux.Vars(r)["vid"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req RecusaNotaFiscalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(vid))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	userID := auth.UsuarioDoContexto(r.Context())
	if v.ConstrutoraID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := RecusarNotaFiscal(v, req.Motivo); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	if err := h.Repo.Update(v); err != nil {
		http.Error(w, "Erro ao gravar recusa", http.StatusInternalServerError)
		return
	}

	// avisa o corretor via webhook da plataforma
	notificacao.EnviarWebhookNotaRecusada(v.NumeroNotaFiscal, req.Motivo)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
