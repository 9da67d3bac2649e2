package construtora

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/TerraVistaImoveis/api-corretor/internal/auth"
	"github.com/TerraVistaImoveis/api-corretor/internal/comissao"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// POST /construtoras/login
// Valida email/senha, emite access token RS256 e seta refresh token em cookie httpOnly.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.FindByEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	// Emite access token e seta refresh (httpOnly) no cookie
	access, err := auth.IssueTokensOnLogin(h.DB, w, user.ID, auth.PerfilConstrutora)
	if err != nil {
		fmt.Print("Erro ao gerar tokens: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": access,
		"token_type":   "Bearer",
		"expires_in":   int(auth.AccessTTL.Seconds()),
	})
}

// POST /construtoras
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateConstrutoraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if !comissao.ValidarTaxas(req.TaxasComissao) {
		http.Error(w, "taxa especial sem corretor nem empreendimento", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Construtora{
		Nome:          req.Nome,
		RazaoSocial:   req.RazaoSocial,
		CNPJ:          req.CNPJ,
		Email:         req.Email,
		Telefone:      req.Telefone,
		Logo:          req.Logo,
		WebhookURL:    req.WebhookURL,
		Password:      string(hash),
		TaxasComissao: req.TaxasComissao,
	}

	if err := h.Repository.Save(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar construtora", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /construtoras
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar construtoras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /construtoras/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "construtora não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(obj)
}

// PUT /construtoras/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if perfil != auth.PerfilConstrutora || uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req UpdateConstrutoraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Update(h.DB, uint(id), &req); err != nil {
		http.Error(w, "erro ao atualizar construtora", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("construtora atualizada com sucesso"))
}

// PUT /construtoras/{id}/taxas-comissao
// Substitui a tabela de comissão; recusa regra especial sem alvo.
func (h *Handler) UpdateTaxas(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if perfil != auth.PerfilConstrutora || uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req UpdateTaxasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	taxas := comissao.TaxasComissao{Padrao: req.Padrao, Especiais: req.Especiais}
	if !comissao.ValidarTaxas(taxas) {
		http.Error(w, "taxa especial sem corretor nem empreendimento", http.StatusBadRequest)
		return
	}

	if err := h.Repository.UpdateTaxas(h.DB, uint(id), taxas); err != nil {
		http.Error(w, "erro ao atualizar taxas", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("taxas atualizadas com sucesso"))
}

// GET /construtoras/{id}/taxa-comissao?corretorId=&empreendimentoId=
// Devolve a taxa efetiva + o tipo da regra aplicada, pela cadeia de precedência.
func (h *Handler) GetTaxaResolvida(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	corretorID, err := strconv.Atoi(r.URL.Query().Get("corretorId"))
	if err != nil || corretorID <= 0 {
		// sem corretorId explícito, usa o corretor autenticado
		corretorID = int(auth.UsuarioDoContexto(r.Context()))
	}
	if corretorID == 0 {
		http.Error(w, "corretorId obrigatório", http.StatusBadRequest)
		return
	}

	var empID *uint
	if raw := r.URL.Query().Get("empreendimentoId"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "empreendimentoId inválido", http.StatusBadRequest)
			return
		}
		u := uint(v)
		empID = &u
	}

	c, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "construtora não encontrada", http.StatusNotFound)
		return
	}

	percentual, tipo := comissao.Resolver(c.TaxasComissao, uint(corretorID), empID, comissao.PadraoMinimo)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(TaxaResolvidaDTO{Percentual: percentual, Tipo: tipo})
}

// DELETE /construtoras/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if perfil != auth.PerfilConstrutora || uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir construtora", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("construtora excluída com sucesso"))
}
