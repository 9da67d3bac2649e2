// internal/relatorio/handler.go
package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/auth"
	"github.com/TerraVistaImoveis/api-corretor/internal/notapendente"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler monta o painel do corretor a partir dos repositórios de vendas e
// notas pendentes. Não tem tabela própria; só lê e agrega.
type Handler struct {
	VendaRepo *venda.Repository
	NotaRepo  *notapendente.Repository
}

// NewHandler cria um novo handler de relatórios
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		VendaRepo: venda.NewRepository(db),
		NotaRepo:  notapendente.NewRepository(db),
	}
}

// filtroDaQuery lê os parâmetros de filtro da query string.
func filtroDaQuery(r *http.Request) Filtro {
	q := r.URL.Query()
	f := Filtro{
		Status:  q.Get("status"),
		Periodo: q.Get("periodo"),
		Busca:   q.Get("busca"),
	}
	if id, err := strconv.Atoi(q.Get("construtoraId")); err == nil && id > 0 {
		f.ConstrutoraID = uint(id)
	}
	if id, err := strconv.Atoi(q.Get("empreendimentoId")); err == nil && id > 0 {
		f.EmpreendimentoID = uint(id)
	}
	return f
}

// GET /corretores/{id}/dashboard
// Painel do corretor: resumo, série mensal, rankings e listas filtradas.
// Corretor autenticado só enxerga o próprio painel.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	corretorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	perfil, _ := r.Context().Value(auth.CtxPerfil).(string)
	if perfil == auth.PerfilCorretor && auth.UsuarioDoContexto(r.Context()) != uint(corretorID) {
		http.Error(w, "Acesso negado", http.StatusForbidden)
		return
	}

	vendas, err := h.VendaRepo.ListByCorretor(uint(corretorID))
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}
	notas, err := h.NotaRepo.ListByCorretorID(uint(corretorID))
	if err != nil {
		http.Error(w, "Erro ao buscar notas pendentes", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	f := filtroDaQuery(r)
	vendasFiltradas := FiltrarVendas(vendas, f, agora)
	notasFiltradas := FiltrarNotas(notas, f, agora)

	notasDTO := make([]notapendente.NotaPendenteDTO, 0, len(notasFiltradas))
	for _, n := range notasFiltradas {
		notasDTO = append(notasDTO, notapendente.ToDTO(n, agora))
	}

	resposta := DashboardDTO{
		Resumo:            CalcularResumo(vendasFiltradas),
		SerieMensal:       CalcularSerieMensal(vendasFiltradas, agora),
		PorConstrutora:    TotaisPorConstrutora(vendasFiltradas),
		PorEmpreendimento: TotaisPorEmpreendimento(vendasFiltradas),
		Vendas:            vendasFiltradas,
		NotasPendentes:    notasDTO,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}
