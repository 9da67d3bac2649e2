// internal/relatorio/resumo.go
package relatorio

import (
	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
)

// Resumo são os totais do painel calculados sobre as vendas já filtradas.
type Resumo struct {
	TotalComissoes     float64 `json:"totalComissoes"`
	ComissoesPagas     float64 `json:"comissoesPagas"`
	ComissoesAReceber  float64 `json:"comissoesAReceber"`
	ValorTotalVendas   float64 `json:"valorTotalVendas"`
	TotalVendas        int     `json:"totalVendas"`
	NotasPendentes     int     `json:"notasPendentes"`
	TaxaMediaComissao  float64 `json:"taxaMediaComissao"`
	PercentualRecebido float64 `json:"percentualRecebido"`
}

// CalcularResumo agrega os indicadores do conjunto de vendas. Conjunto vazio
// devolve tudo zerado, sem divisão por zero na média nem no percentual.
func CalcularResumo(vendas []venda.Venda) Resumo {
	var r Resumo
	var somaTaxas float64

	for _, v := range vendas {
		r.TotalComissoes += v.ComissaoCorretor
		r.ValorTotalVendas += v.Valor
		somaTaxas += v.TaxaComissaoCorretor

		if v.StatusComissao == models.ComissaoPaga {
			r.ComissoesPagas += v.ComissaoCorretor
		} else {
			r.ComissoesAReceber += v.ComissaoCorretor
		}
		if v.StatusNotaFiscal == models.NotaPendente {
			r.NotasPendentes++
		}
	}

	r.TotalVendas = len(vendas)
	if r.TotalVendas > 0 {
		r.TaxaMediaComissao = somaTaxas / float64(r.TotalVendas)
	}
	if r.TotalComissoes > 0 {
		r.PercentualRecebido = r.ComissoesPagas / r.TotalComissoes * 100
	}
	return r
}
