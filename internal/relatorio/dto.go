// internal/relatorio/dto.go
package relatorio

import (
	"github.com/TerraVistaImoveis/api-corretor/internal/notapendente"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
)

// DashboardDTO é a resposta completa do painel do corretor: totais, série
// histórica, rankings e as listas já filtradas.
type DashboardDTO struct {
	Resumo            Resumo                         `json:"resumo"`
	SerieMensal       SerieMensal                    `json:"serieMensal"`
	PorConstrutora    []TotalGrupo                   `json:"porConstrutora"`
	PorEmpreendimento []TotalGrupo                   `json:"porEmpreendimento"`
	Vendas            []venda.Venda                  `json:"vendas"`
	NotasPendentes    []notapendente.NotaPendenteDTO `json:"notasPendentes"`
}
