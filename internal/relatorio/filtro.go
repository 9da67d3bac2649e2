// internal/relatorio/filtro.go
package relatorio

import (
	"strings"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/notapendente"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
)

// Períodos aceitos nos filtros do painel. Qualquer outro valor (inclusive
// vazio) é tratado como "todos".
const (
	PeriodoMes       = "mes"
	PeriodoTrimestre = "trimestre"
	PeriodoAno       = "ano"
)

// Filtro reúne os critérios do painel do corretor. Campo zerado significa
// "sem restrição"; critérios ativos são combinados por E lógico.
type Filtro struct {
	Status           string // status de comissão (vendas) ou status efetivo (notas)
	ConstrutoraID    uint
	EmpreendimentoID uint
	Periodo          string // mes | trimestre | ano | todos
	Busca            string // texto livre: empreendimento, cliente, unidade, construtora
}

// inicioPeriodo devolve o limite inferior (inclusivo) da janela de datas,
// ou false quando o período não restringe nada.
func inicioPeriodo(periodo string, agora time.Time) (time.Time, bool) {
	switch periodo {
	case PeriodoMes:
		return agora.AddDate(0, -1, 0), true
	case PeriodoTrimestre:
		return agora.AddDate(0, -3, 0), true
	case PeriodoAno:
		return agora.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func contemBusca(busca string, campos ...string) bool {
	if busca == "" {
		return true
	}
	alvo := strings.ToLower(busca)
	for _, campo := range campos {
		if strings.Contains(strings.ToLower(campo), alvo) {
			return true
		}
	}
	return false
}

func statusLibera(filtro, status string) bool {
	return filtro == "" || filtro == models.FiltroTodos || filtro == status
}

// FiltrarVendas aplica o filtro sobre a lista de vendas do corretor.
// O status comparado é o de comissão; a janela de datas usa a data da venda.
func FiltrarVendas(vendas []venda.Venda, f Filtro, agora time.Time) []venda.Venda {
	inicio, temJanela := inicioPeriodo(f.Periodo, agora)

	resultado := make([]venda.Venda, 0, len(vendas))
	for _, v := range vendas {
		if !statusLibera(f.Status, v.StatusComissao) {
			continue
		}
		if f.ConstrutoraID != 0 && v.ConstrutoraID != f.ConstrutoraID {
			continue
		}
		if f.EmpreendimentoID != 0 && v.EmpreendimentoID != f.EmpreendimentoID {
			continue
		}
		if temJanela && v.DataVenda.Before(inicio) {
			continue
		}
		if !contemBusca(f.Busca, v.Empreendimento.Nome, v.Cliente, v.Unidade, v.Construtora.Nome) {
			continue
		}
		resultado = append(resultado, v)
	}
	return resultado
}

// FiltrarNotas aplica o filtro sobre notas pendentes. O status comparado é o
// efetivo (Vencida derivada no momento da leitura); a janela usa a criação.
func FiltrarNotas(notas []notapendente.NotaPendente, f Filtro, agora time.Time) []notapendente.NotaPendente {
	inicio, temJanela := inicioPeriodo(f.Periodo, agora)

	resultado := make([]notapendente.NotaPendente, 0, len(notas))
	for _, n := range notas {
		if !statusLibera(f.Status, notapendente.StatusEfetivo(n, agora)) {
			continue
		}
		if f.ConstrutoraID != 0 && n.ConstrutoraID != f.ConstrutoraID {
			continue
		}
		if f.EmpreendimentoID != 0 && n.EmpreendimentoID != f.EmpreendimentoID {
			continue
		}
		if temJanela && n.CreatedAt.Before(inicio) {
			continue
		}
		if !contemBusca(f.Busca, n.Empreendimento.Nome, n.Cliente, n.Unidade, n.Construtora.Nome) {
			continue
		}
		resultado = append(resultado, n)
	}
	return resultado
}
