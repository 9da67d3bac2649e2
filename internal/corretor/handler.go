package corretor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TerraVistaImoveis/api-corretor/internal/auth"
	"github.com/TerraVistaImoveis/api-corretor/internal/notapendente"
	"github.com/TerraVistaImoveis/api-corretor/internal/utils"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createCorretorRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	CRECI     string `json:"creci"`
	CNPJ      string `json:"cnpj"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Foto      string `json:"foto"`
	Senha     string `json:"senha"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login autentica por e-mail ou CNPJ e emite os tokens
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmailOuCNPJ(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	// Emite access token e seta refresh (httpOnly) no cookie
	access, err := auth.IssueTokensOnLogin(h.DB, w, user.ID, auth.PerfilCorretor)
	if err != nil {
		http.Error(w, "erro ao gerar tokens", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": access,
		"token_type":   "Bearer",
		"expires_in":   int(auth.AccessTTL.Seconds()),
	})
}

// CriarCorretor cadastra novo corretor (livre de autenticação)
func (h *Handler) CriarCorretor(w http.ResponseWriter, r *http.Request) {
	var req createCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Corretor{
		Nome:                  req.Nome,
		Sobrenome:             req.Sobrenome,
		CRECI:                 req.CRECI,
		CNPJ:                  req.CNPJ,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Foto:                  req.Foto,
		Senha:                 hash,
		PrecisaRedefinirSenha: false,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar corretor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarCorretores retorna todos (construtora) ou apenas o próprio registro
func (h *Handler) ListarCorretores(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDoContexto(r.Context())
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)

	if perfil == auth.PerfilConstrutora {
		corretores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar corretores", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(corretores)
		return
	}

	// corretor vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode([]Corretor{*obj})
}

// BuscarPorID retorna um corretor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDoContexto(r.Context())
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if perfil == auth.PerfilCorretor && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarCorretor altera dados de um corretor existente
func (h *Handler) AtualizarCorretor(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDoContexto(r.Context())
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if perfil == auth.PerfilCorretor && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Corretor
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar corretor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("corretor atualizado com sucesso"))
}

// DeletarCorretor remove um corretor
func (h *Handler) DeletarCorretor(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDoContexto(r.Context())
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if perfil == auth.PerfilCorretor && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir corretor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("corretor excluído com sucesso"))
}

// ObterResumoCorretor constrói e retorna o DTO de resumo
func (h *Handler) ObterResumoCorretor(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDoContexto(r.Context())
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)

	idParam := userID
	if perfil == auth.PerfilConstrutora {
		if idStr := mux.Vars(r)["id"]; idStr != "" {
			if i, err := strconv.Atoi(idStr); err == nil {
				idParam = uint(i)
			}
		}
	}

	corretorObj, err := h.Repository.BuscarPorID(h.DB, idParam)
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}

	vendas, _ := venda.NewRepository(h.DB).ListByCorretor(corretorObj.ID)
	notaRepo := notapendente.NewRepository(h.DB)
	valorSemNota, _ := notaRepo.SumValorByCorretorID(nil, corretorObj.ID)
	notas, _ := notaRepo.ListByCorretorID(corretorObj.ID)
	dto := MontarResumoCorretorDTO(*corretorObj, vendas, valorSemNota, len(notas))

	json.NewEncoder(w).Encode(dto)
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioDoContexto(r.Context())

	var c Corretor
	if err := h.DB.First(&c, userID).Error; err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}
