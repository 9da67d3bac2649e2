package notapendente

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/auth"
	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/notificacao"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de notas pendentes
type Handler struct {
	Repo      *Repository
	VendaRepo *venda.Repository
	validate  *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:      NewRepository(db),
		VendaRepo: venda.NewRepository(db),
		validate:  validator.New(),
	}
}

// Create trata POST /vendas/{vid}/notas-pendentes
// Abre a nota em rascunho com o detalhamento tributário já calculado.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	vid, err := strconv.Atoi(mux.Vars(r)["vid"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto CreateNotaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "campos obrigatórios ausentes: "+err.Error(), http.StatusBadRequest)
		return
	}

	vencimento, err := time.Parse(time.RFC3339, dto.DataVencimento)
	if err != nil {
		http.Error(w, "dataVencimento inválida", http.StatusBadRequest)
		return
	}

	v, err := h.VendaRepo.FindByID(uint(vid))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	// valores omitidos vêm da própria venda
	valor := dto.ValorComissao
	if valor == 0 {
		valor = v.ComissaoCorretor
	}
	taxa := dto.TaxaComissao
	if taxa == 0 {
		taxa = v.TaxaComissaoCorretor
	}

	nota := NotaPendente{
		VendaID:          v.ID,
		CorretorID:       v.CorretorID,
		ConstrutoraID:    v.ConstrutoraID,
		EmpreendimentoID: v.EmpreendimentoID,
		Cliente:          v.Cliente,
		Unidade:          v.Unidade,
		ValorComissao:    valor,
		TaxaComissao:     taxa,
		DataVencimento:   vencimento,
		Status:           models.NotaPendenteRascunho,
		DescricaoServico: dto.DescricaoServico,
		CodigoServico:    dto.CodigoServico,
		Impostos:         CalcularImpostos(valor, AliquotasPadrao),
	}

	if err := h.Repo.Create(&nota); err != nil {
		http.Error(w, "Erro ao criar nota pendente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ToDTO(nota, time.Now()))
}

// List trata GET /corretores/{id}/notas-pendentes
// Aceita um query param opcional `status` (efetivo, inclui "Vencida").
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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

	notas, err := h.Repo.ListByCorretorID(uint(corretorID))
	if err != nil {
		http.Error(w, "Erro ao buscar notas", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	status := r.URL.Query().Get("status")
	if status == models.FiltroTodos {
		status = ""
	}

	out := make([]NotaPendenteDTO, 0, len(notas))
	for _, n := range notas {
		dto := ToDTO(n, agora)
		if status != "" && dto.Status != status {
			continue
		}
		out = append(out, dto)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// ListByConstrutora trata GET /construtoras/{id}/notas-pendentes
// Lado construtora: visão das comissões ainda sem nota dos seus corretores.
func (h *Handler) ListByConstrutora(w http.ResponseWriter, r *http.Request) {
	construtoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de construtora inválido", http.StatusBadRequest)
		return
	}

	if auth.UsuarioDoContexto(r.Context()) != uint(construtoraID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	notas, err := h.Repo.ListByConstrutoraID(uint(construtoraID))
	if err != nil {
		http.Error(w, "Erro ao buscar notas", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	out := make([]NotaPendenteDTO, 0, len(notas))
	for _, n := range notas {
		out = append(out, ToDTO(n, agora))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// Get trata GET /notas-pendentes/{nid}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da nota inválido", http.StatusBadRequest)
		return
	}

	nota, err := h.Repo.FindByID(uint(nid))
	if err != nil {
		http.Error(w, "Nota não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ToDTO(*nota, time.Now()))
}

// Update trata PUT /notas-pendentes/{nid}
// Só rascunho e pendente aceitam edição; nota vencida devolve 409.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da nota inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var campos CamposEditaveis
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(campos); err != nil {
		http.Error(w, "campos inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	nota, err := h.Repo.FindByID(uint(nid))
	if err != nil {
		http.Error(w, "Nota não encontrada", http.StatusNotFound)
		return
	}

	userID := auth.UsuarioDoContexto(r.Context())
	if nota.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := AplicarEdicao(nota, campos, time.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	if err := h.Repo.Update(nota); err != nil {
		http.Error(w, "Erro ao atualizar nota", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ToDTO(*nota, time.Now()))
}

// Submeter trata PATCH /notas-pendentes/{nid}/submissao
// Marca o rascunho como pronto para emissão no portal.
func (h *Handler) Submeter(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da nota inválido", http.StatusBadRequest)
		return
	}

	nota, err := h.Repo.FindByID(uint(nid))
	if err != nil {
		http.Error(w, "Nota não encontrada", http.StatusNotFound)
		return
	}

	userID := auth.UsuarioDoContexto(r.Context())
	if nota.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := Submeter(nota); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	if err := h.Repo.Update(nota); err != nil {
		http.Error(w, "Erro ao submeter nota", http.StatusInternalServerError)
		return
	}

	// submeteu com o vencimento já estourado: alerta o financeiro
	agora := time.Now()
	if StatusEfetivo(*nota, agora) == models.NotaPendenteVencida {
		notificacao.EnviarWebhookNotaVencida(nota.Cliente, nota.ValorComissao, DiasVencidos(*nota, agora))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ToDTO(*nota, agora))
}

// Emitir trata POST /notas-pendentes/{nid}/emissao
// O corretor anexa a nota emitida no portal: a venda vira "Recebida" com os
// metadados e a nota sai do conjunto pendente, tudo na mesma transação.
func (h *Handler) Emitir(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da nota inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req venda.EmissaoNotaFiscalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	// os quatro campos obrigatórios; sem qualquer um deles nada muda
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios ausentes: "+err.Error(), http.StatusBadRequest)
		return
	}

	dataEmissao, err := time.Parse(time.RFC3339, req.DataEmissao)
	if err != nil {
		http.Error(w, "dataEmissao inválida", http.StatusBadRequest)
		return
	}

	nota, err := h.Repo.FindByID(uint(nid))
	if err != nil {
		http.Error(w, "Nota não encontrada", http.StatusNotFound)
		return
	}

	userID := auth.UsuarioDoContexto(r.Context())
	if nota.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	v, err := h.VendaRepo.FindByID(nota.VendaID)
	if err != nil {
		http.Error(w, "Venda da nota não encontrada", http.StatusNotFound)
		return
	}

	if err := venda.AnexarNotaFiscal(v, req.NumeroNotaFiscal, dataEmissao, req.Arquivo); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	// venda e nota mudam juntas ou nada muda
	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := h.VendaRepo.WithDB(tx).Update(v); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao gravar nota na venda", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.WithDB(tx).DeleteByID(nota.ID); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao resolver nota pendente", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
