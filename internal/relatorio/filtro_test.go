// internal/relatorio/filtro_test.go
package relatorio

import (
	"testing"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/construtora"
	"github.com/TerraVistaImoveis/api-corretor/internal/empreendimento"
	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/notapendente"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
	"github.com/stretchr/testify/require"
)

var agora = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func novaVenda(id uint, construtoraID, empreendimentoID uint, cliente, statusComissao string, comissao float64, dataVenda time.Time) venda.Venda {
	nomes := map[uint]string{1: "Residencial Aurora", 2: "Parque das Águas", 3: "Torre Atlântica"}
	construtoras := map[uint]string{10: "Construtora Horizonte", 20: "MRV Litoral"}
	return venda.Venda{
		ID:               id,
		CorretorID:       7,
		ConstrutoraID:    construtoraID,
		EmpreendimentoID: empreendimentoID,
		Cliente:          cliente,
		Unidade:          "Apto 10" + string(rune('0'+id)),
		Valor:            comissao * 20,
		DataVenda:        dataVenda,
		ComissaoCorretor: comissao,
		StatusComissao:   statusComissao,
		StatusNotaFiscal: models.NotaPendente,
		Empreendimento:   empreendimento.Empreendimento{ID: empreendimentoID, Nome: nomes[empreendimentoID]},
		Construtora:      construtora.Construtora{ID: construtoraID, Nome: construtoras[construtoraID]},
	}
}

func fixtureVendas() []venda.Venda {
	return []venda.Venda{
		novaVenda(1, 10, 1, "Ana Souza", models.ComissaoPaga, 1000, agora.AddDate(0, 0, -10)),
		novaVenda(2, 10, 1, "Bruno Lima", models.ComissaoPendente, 2000, agora.AddDate(0, 0, -40)),
		novaVenda(3, 10, 2, "Carla Dias", models.ComissaoPaga, 3000, agora.AddDate(0, -2, 0)),
		novaVenda(4, 20, 3, "Diego Ramos", models.ComissaoAprovada, 1500, agora.AddDate(0, -5, 0)),
		novaVenda(5, 20, 3, "Elisa Nunes", models.ComissaoPendente, 500, agora.AddDate(-2, 0, 0)),
	}
}

func TestFiltrarVendasSemFiltroDevolveTudo(t *testing.T) {
	vendas := fixtureVendas()

	require.Len(t, FiltrarVendas(vendas, Filtro{}, agora), 5)
	require.Len(t, FiltrarVendas(vendas, Filtro{Status: models.FiltroTodos}, agora), 5)
}

func TestFiltrarVendasPorStatus(t *testing.T) {
	vendas := fixtureVendas()

	pagas := FiltrarVendas(vendas, Filtro{Status: models.ComissaoPaga}, agora)
	require.Len(t, pagas, 2)
	for _, v := range pagas {
		require.Equal(t, models.ComissaoPaga, v.StatusComissao)
	}
}

func TestFiltrarVendasConjuncao(t *testing.T) {
	vendas := fixtureVendas()

	// status + construtora + empreendimento ao mesmo tempo
	resultado := FiltrarVendas(vendas, Filtro{
		Status:           models.ComissaoPaga,
		ConstrutoraID:    10,
		EmpreendimentoID: 1,
	}, agora)
	require.Len(t, resultado, 1)
	require.Equal(t, uint(1), resultado[0].ID)

	// mesma conjunção com empreendimento que não bate: vazio
	resultado = FiltrarVendas(vendas, Filtro{
		Status:           models.ComissaoPaga,
		ConstrutoraID:    10,
		EmpreendimentoID: 3,
	}, agora)
	require.Empty(t, resultado)
}

func TestFiltrarVendasPorPeriodo(t *testing.T) {
	vendas := fixtureVendas()

	require.Len(t, FiltrarVendas(vendas, Filtro{Periodo: PeriodoMes}, agora), 1)
	require.Len(t, FiltrarVendas(vendas, Filtro{Periodo: PeriodoTrimestre}, agora), 3)
	require.Len(t, FiltrarVendas(vendas, Filtro{Periodo: PeriodoAno}, agora), 4)
	require.Len(t, FiltrarVendas(vendas, Filtro{Periodo: models.FiltroTodos}, agora), 5)
}

func TestFiltrarVendasPeriodoInclusivoNaBorda(t *testing.T) {
	naBorda := novaVenda(9, 10, 1, "Fábio Reis", models.ComissaoPaga, 100, agora.AddDate(0, -1, 0))

	resultado := FiltrarVendas([]venda.Venda{naBorda}, Filtro{Periodo: PeriodoMes}, agora)
	require.Len(t, resultado, 1)
}

func TestFiltrarVendasBuscaTexto(t *testing.T) {
	vendas := fixtureVendas()

	// nome do empreendimento, sem diferenciar maiúsculas
	require.Len(t, FiltrarVendas(vendas, Filtro{Busca: "aurora"}, agora), 2)
	// nome do cliente
	require.Len(t, FiltrarVendas(vendas, Filtro{Busca: "Carla"}, agora), 1)
	// nome da construtora
	require.Len(t, FiltrarVendas(vendas, Filtro{Busca: "mrv"}, agora), 2)
	// nada casa
	require.Empty(t, FiltrarVendas(vendas, Filtro{Busca: "inexistente"}, agora))
}

func TestFiltrarNotasStatusEfetivo(t *testing.T) {
	notas := []notapendente.NotaPendente{
		{ID: 1, CorretorID: 7, ConstrutoraID: 10, EmpreendimentoID: 1, Cliente: "Ana Souza",
			Status: models.NotaPendentePendente, DataVencimento: agora.AddDate(0, 0, -3), CreatedAt: agora.AddDate(0, 0, -20)},
		{ID: 2, CorretorID: 7, ConstrutoraID: 10, EmpreendimentoID: 1, Cliente: "Bruno Lima",
			Status: models.NotaPendentePendente, DataVencimento: agora.AddDate(0, 0, 10), CreatedAt: agora.AddDate(0, 0, -2)},
		{ID: 3, CorretorID: 7, ConstrutoraID: 20, EmpreendimentoID: 3, Cliente: "Carla Dias",
			Status: models.NotaPendenteRascunho, DataVencimento: agora.AddDate(0, 0, -30), CreatedAt: agora.AddDate(0, -4, 0)},
	}

	// "Vencida" nunca está gravada, mas o filtro enxerga o status derivado
	vencidas := FiltrarNotas(notas, Filtro{Status: models.NotaPendenteVencida}, agora)
	require.Len(t, vencidas, 1)
	require.Equal(t, uint(1), vencidas[0].ID)

	// rascunho vencido no calendário continua rascunho
	rascunhos := FiltrarNotas(notas, Filtro{Status: models.NotaPendenteRascunho}, agora)
	require.Len(t, rascunhos, 1)
	require.Equal(t, uint(3), rascunhos[0].ID)

	// janela de período usa a data de criação da nota
	recentes := FiltrarNotas(notas, Filtro{Periodo: PeriodoMes}, agora)
	require.Len(t, recentes, 2)
}
