package venda

import (
	"testing"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAnexarNotaFiscal(t *testing.T) {
	emissao := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	v := Venda{StatusNotaFiscal: models.NotaPendente}
	err := AnexarNotaFiscal(&v, "NF-0042", emissao, "s3://notas/nf-0042.pdf")
	require.NoError(t, err)
	require.Equal(t, models.NotaRecebida, v.StatusNotaFiscal)
	require.Equal(t, "NF-0042", v.NumeroNotaFiscal)
	require.Equal(t, emissao, *v.DataNotaFiscal)
	require.Equal(t, "s3://notas/nf-0042.pdf", v.ArquivoNotaFiscal)

	// segunda emissão sobre nota já recebida é recusada
	err = AnexarNotaFiscal(&v, "NF-0043", emissao, "s3://notas/nf-0043.pdf")
	require.ErrorIs(t, err, ErrNotaJaRecebida)
	require.Equal(t, "NF-0042", v.NumeroNotaFiscal)
}

func TestAnexarNotaFiscalNaoExigida(t *testing.T) {
	v := Venda{StatusNotaFiscal: models.NotaNaoExigida}
	err := AnexarNotaFiscal(&v, "NF-1", time.Now(), "arq.pdf")
	require.ErrorIs(t, err, ErrNotaNaoExigida)
	require.Equal(t, models.NotaNaoExigida, v.StatusNotaFiscal)
}

func TestRecusarEReenviar(t *testing.T) {
	emissao := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	v := Venda{StatusNotaFiscal: models.NotaPendente}
	require.NoError(t, AnexarNotaFiscal(&v, "NF-1", emissao, "arq.pdf"))

	err := RecusarNotaFiscal(&v, "valor divergente do combinado")
	require.NoError(t, err)
	require.Equal(t, models.NotaRecusada, v.StatusNotaFiscal)
	require.Equal(t, "valor divergente do combinado", v.MotivoRecusa)

	// reenvio após recusa limpa o motivo
	require.NoError(t, AnexarNotaFiscal(&v, "NF-2", emissao, "arq2.pdf"))
	require.Equal(t, models.NotaRecebida, v.StatusNotaFiscal)
	require.Empty(t, v.MotivoRecusa)
}

func TestRecusarSemNotaRecebida(t *testing.T) {
	v := Venda{StatusNotaFiscal: models.NotaPendente}
	err := RecusarNotaFiscal(&v, "qualquer")
	require.ErrorIs(t, err, ErrNotaNaoRecebida)
	require.Equal(t, models.NotaPendente, v.StatusNotaFiscal)
	require.Empty(t, v.MotivoRecusa)
}
