package notapendente

import (
	"testing"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/stretchr/testify/require"
)

var agora = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func notaPendenteEm(vencimento time.Time) NotaPendente {
	return NotaPendente{
		ID:             1,
		VendaID:        10,
		ValorComissao:  12000,
		TaxaComissao:   5.0,
		DataVencimento: vencimento,
		Status:         models.NotaPendentePendente,
	}
}

func TestStatusEfetivoVencida(t *testing.T) {
	// vencida há 10 dias
	n := notaPendenteEm(agora.AddDate(0, 0, -10))
	require.Equal(t, models.NotaPendenteVencida, StatusEfetivo(n, agora))
	require.Equal(t, 10, DiasVencidos(n, agora))

	// vence amanhã: continua pendente, sem dias de atraso
	n = notaPendenteEm(agora.AddDate(0, 0, 1))
	require.Equal(t, models.NotaPendentePendente, StatusEfetivo(n, agora))
	require.Equal(t, 0, DiasVencidos(n, agora))
}

func TestStatusEfetivoRascunhoNuncaVence(t *testing.T) {
	n := notaPendenteEm(agora.AddDate(0, 0, -30))
	n.Status = models.NotaPendenteRascunho
	require.Equal(t, models.NotaPendenteRascunho, StatusEfetivo(n, agora))
	require.Equal(t, 0, DiasVencidos(n, agora))
}

func TestAplicarEdicaoRoundTrip(t *testing.T) {
	n := notaPendenteEm(agora.AddDate(0, 0, 15))
	n.Status = models.NotaPendenteRascunho
	n.DescricaoServico = "Intermediação de venda de imóvel"
	n.CodigoServico = "17.02"
	n.Impostos = CalcularImpostos(n.ValorComissao, AliquotasPadrao)

	novoValor := 15000.0
	novaTaxa := 6.0
	err := AplicarEdicao(&n, CamposEditaveis{
		ValorComissao: &novoValor,
		TaxaComissao:  &novaTaxa,
	}, agora)
	require.NoError(t, err)

	require.Equal(t, 15000.0, n.ValorComissao)
	require.Equal(t, 6.0, n.TaxaComissao)
	// demais campos intactos
	require.Equal(t, "Intermediação de venda de imóvel", n.DescricaoServico)
	require.Equal(t, "17.02", n.CodigoServico)
	require.Equal(t, models.NotaPendenteRascunho, n.Status)
	// impostos recalculados sobre o novo valor
	require.Equal(t, 15000.0*0.05, n.Impostos.ISS.Valor)
}

func TestAplicarEdicaoVencidaRejeitada(t *testing.T) {
	n := notaPendenteEm(agora.AddDate(0, 0, -3))
	antes := n

	novoValor := 999.0
	vencimentoNovo := agora.AddDate(0, 1, 0).Format(time.RFC3339)
	err := AplicarEdicao(&n, CamposEditaveis{
		ValorComissao:  &novoValor,
		DataVencimento: &vencimentoNovo,
	}, agora)
	require.ErrorIs(t, err, ErrNotaVencidaNaoEditavel)
	// nenhum efeito parcial
	require.Equal(t, antes, n)
}

func TestSubmeter(t *testing.T) {
	n := notaPendenteEm(agora.AddDate(0, 0, 15))
	n.Status = models.NotaPendenteRascunho

	require.NoError(t, Submeter(&n))
	require.Equal(t, models.NotaPendentePendente, n.Status)

	// submeter de novo não é permitido
	require.ErrorIs(t, Submeter(&n), ErrNotaJaSubmetida)
}
