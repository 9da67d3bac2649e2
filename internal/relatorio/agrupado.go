// internal/relatorio/agrupado.go
package relatorio

import (
	"sort"

	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
)

// TotalGrupo é uma linha dos rankings por construtora ou por empreendimento.
type TotalGrupo struct {
	ID            uint    `json:"id"`
	Nome          string  `json:"nome"`
	TotalComissao float64 `json:"totalComissao"`
	TotalVendas   int     `json:"totalVendas"`
}

// TotaisPorConstrutora agrupa as comissões por construtora, maior total
// primeiro.
func TotaisPorConstrutora(vendas []venda.Venda) []TotalGrupo {
	return agrupar(vendas, func(v venda.Venda) (uint, string) {
		return v.ConstrutoraID, v.Construtora.Nome
	})
}

// TotaisPorEmpreendimento agrupa as comissões por empreendimento, maior total
// primeiro.
func TotaisPorEmpreendimento(vendas []venda.Venda) []TotalGrupo {
	return agrupar(vendas, func(v venda.Venda) (uint, string) {
		return v.EmpreendimentoID, v.Empreendimento.Nome
	})
}

func agrupar(vendas []venda.Venda, chave func(venda.Venda) (uint, string)) []TotalGrupo {
	porID := make(map[uint]*TotalGrupo)
	for _, v := range vendas {
		id, nome := chave(v)
		grupo, ok := porID[id]
		if !ok {
			grupo = &TotalGrupo{ID: id, Nome: nome}
			porID[id] = grupo
		}
		grupo.TotalComissao += v.ComissaoCorretor
		grupo.TotalVendas++
	}

	grupos := make([]TotalGrupo, 0, len(porID))
	for _, g := range porID {
		grupos = append(grupos, *g)
	}
	sort.Slice(grupos, func(i, j int) bool {
		if grupos[i].TotalComissao != grupos[j].TotalComissao {
			return grupos[i].TotalComissao > grupos[j].TotalComissao
		}
		return grupos[i].Nome < grupos[j].Nome
	})
	return grupos
}
