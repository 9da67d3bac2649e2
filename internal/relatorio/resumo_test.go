// internal/relatorio/resumo_test.go
package relatorio

import (
	"testing"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
	"github.com/stretchr/testify/require"
)

func TestCalcularResumoTotais(t *testing.T) {
	vendas := []venda.Venda{
		{ComissaoCorretor: 1000, Valor: 20000, TaxaComissaoCorretor: 5.0,
			StatusComissao: models.ComissaoPaga, StatusNotaFiscal: models.NotaRecebida},
		{ComissaoCorretor: 2000, Valor: 40000, TaxaComissaoCorretor: 5.0,
			StatusComissao: models.ComissaoPendente, StatusNotaFiscal: models.NotaPendente},
		{ComissaoCorretor: 3000, Valor: 50000, TaxaComissaoCorretor: 6.0,
			StatusComissao: models.ComissaoPaga, StatusNotaFiscal: models.NotaPendente},
	}

	r := CalcularResumo(vendas)

	require.Equal(t, 6000.0, r.TotalComissoes)
	require.Equal(t, 4000.0, r.ComissoesPagas)
	require.Equal(t, 2000.0, r.ComissoesAReceber)
	require.Equal(t, 110000.0, r.ValorTotalVendas)
	require.Equal(t, 3, r.TotalVendas)
	require.Equal(t, 2, r.NotasPendentes)
	require.InDelta(t, 16.0/3.0, r.TaxaMediaComissao, 1e-9)
	require.InDelta(t, 4000.0/6000.0*100, r.PercentualRecebido, 1e-9)
}

func TestCalcularResumoVazioNaoDividePorZero(t *testing.T) {
	r := CalcularResumo(nil)

	require.Equal(t, Resumo{}, r)
}

func TestCalcularResumoSemPagas(t *testing.T) {
	vendas := []venda.Venda{
		{ComissaoCorretor: 800, StatusComissao: models.ComissaoAprovada, StatusNotaFiscal: models.NotaNaoExigida},
	}

	r := CalcularResumo(vendas)

	require.Equal(t, 0.0, r.ComissoesPagas)
	require.Equal(t, 800.0, r.ComissoesAReceber)
	require.Equal(t, 0.0, r.PercentualRecebido)
	require.Equal(t, 0, r.NotasPendentes)
}

func TestCalcularSerieMensalBuckets(t *testing.T) {
	// agosto de 2025: série cobre mar..ago
	agoraSerie := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	vendas := []venda.Venda{
		{ComissaoCorretor: 100, StatusComissao: models.ComissaoPaga,
			DataVenda: time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)},
		{ComissaoCorretor: 250, StatusComissao: models.ComissaoPaga,
			DataVenda: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		{ComissaoCorretor: 400, StatusComissao: models.ComissaoPendente,
			DataVenda: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ComissaoCorretor: 50, StatusComissao: models.ComissaoAprovada,
			DataVenda: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		// fora da janela de seis meses: ignorada
		{ComissaoCorretor: 999, StatusComissao: models.ComissaoPaga,
			DataVenda: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	s := CalcularSerieMensal(vendas, agoraSerie)

	require.Equal(t, []string{"mar", "abr", "mai", "jun", "jul", "ago"}, s.Meses)
	require.Equal(t, []float64{0, 0, 0, 0, 0, 350}, s.Pagas)
	require.Equal(t, []float64{0, 0, 0, 450, 0, 0}, s.Pendentes)
}

func TestCalcularSerieMensalViradaDeAno(t *testing.T) {
	// fevereiro de 2025: série cobre set/24..fev/25
	agoraSerie := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	vendas := []venda.Venda{
		{ComissaoCorretor: 700, StatusComissao: models.ComissaoPaga,
			DataVenda: time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)},
		{ComissaoCorretor: 300, StatusComissao: models.ComissaoPendente,
			DataVenda: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	s := CalcularSerieMensal(vendas, agoraSerie)

	require.Equal(t, []string{"set", "out", "nov", "dez", "jan", "fev"}, s.Meses)
	require.Equal(t, 700.0, s.Pagas[2])
	require.Equal(t, 300.0, s.Pendentes[4])
}

func TestTotaisPorConstrutoraOrdenadoDesc(t *testing.T) {
	vendas := fixtureVendas()

	grupos := TotaisPorConstrutora(vendas)

	require.Len(t, grupos, 2)
	require.Equal(t, uint(10), grupos[0].ID)
	require.Equal(t, "Construtora Horizonte", grupos[0].Nome)
	require.Equal(t, 6000.0, grupos[0].TotalComissao)
	require.Equal(t, 3, grupos[0].TotalVendas)
	require.Equal(t, uint(20), grupos[1].ID)
	require.Equal(t, 2000.0, grupos[1].TotalComissao)
}

func TestTotaisPorEmpreendimentoOrdenadoDesc(t *testing.T) {
	vendas := fixtureVendas()

	grupos := TotaisPorEmpreendimento(vendas)

	require.Len(t, grupos, 3)
	// 1: 3000 (Aurora), 2: 3000 (Parque), 3: 2000 (Torre); empate decide por nome
	require.Equal(t, 3000.0, grupos[0].TotalComissao)
	require.Equal(t, 3000.0, grupos[1].TotalComissao)
	require.Equal(t, "Parque das Águas", grupos[0].Nome)
	require.Equal(t, "Residencial Aurora", grupos[1].Nome)
	require.Equal(t, uint(3), grupos[2].ID)

	require.Empty(t, TotaisPorEmpreendimento(nil))
}
