package comissao

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(v uint) *uint { return &v }

func tabelaCompleta() TaxasComissao {
	return TaxasComissao{
		Padrao: 4.0,
		Especiais: []TaxaEspecial{
			{CorretorID: ptr(10), EmpreendimentoID: ptr(100), Percentual: 7.0},
			{EmpreendimentoID: ptr(100), Percentual: 6.0},
			{CorretorID: ptr(10), Percentual: 5.0},
		},
	}
}

func TestResolverPrecedencia(t *testing.T) {
	taxas := tabelaCompleta()

	// corretor + empreendimento batem: vale a regra mais específica
	p, tipo := Resolver(taxas, 10, ptr(100), PadraoMinimo)
	require.Equal(t, 7.0, p)
	require.Equal(t, TipoCorretorEmpreendimento, tipo)

	// outro empreendimento: cai para a regra só de corretor
	p, tipo = Resolver(taxas, 10, ptr(200), PadraoMinimo)
	require.Equal(t, 5.0, p)
	require.Equal(t, TipoCorretor, tipo)

	// outro corretor no empreendimento 100: regra só de empreendimento
	p, tipo = Resolver(taxas, 20, ptr(100), PadraoMinimo)
	require.Equal(t, 6.0, p)
	require.Equal(t, TipoEmpreendimento, tipo)

	// nada bate: padrão da construtora
	p, tipo = Resolver(taxas, 20, ptr(200), PadraoMinimo)
	require.Equal(t, 4.0, p)
	require.Equal(t, TipoPadrao, tipo)
}

func TestResolverSemEmpreendimento(t *testing.T) {
	taxas := tabelaCompleta()

	// consulta geral (sem empreendimento) ignora regras de empreendimento
	p, tipo := Resolver(taxas, 10, nil, PadraoMinimo)
	require.Equal(t, 5.0, p)
	require.Equal(t, TipoCorretor, tipo)

	p, tipo = Resolver(taxas, 20, nil, PadraoMinimo)
	require.Equal(t, 4.0, p)
	require.Equal(t, TipoPadrao, tipo)
}

func TestResolverTotalidade(t *testing.T) {
	// só padrão
	p, tipo := Resolver(TaxasComissao{Padrao: 2.5}, 1, ptr(1), PadraoMinimo)
	require.Equal(t, 2.5, p)
	require.Equal(t, TipoPadrao, tipo)

	// tabela vazia: cai no piso do chamador
	p, tipo = Resolver(TaxasComissao{}, 1, ptr(1), PadraoMinimo)
	require.Equal(t, PadraoMinimo, p)
	require.Equal(t, TipoPadrao, tipo)
}

func TestResolverDesempatePrimeiraDaLista(t *testing.T) {
	// duas regras no mesmo nível: vale a primeira cadastrada
	taxas := TaxasComissao{
		Padrao: 4.0,
		Especiais: []TaxaEspecial{
			{CorretorID: ptr(10), Percentual: 5.5},
			{CorretorID: ptr(10), Percentual: 9.9},
		},
	}
	p, tipo := Resolver(taxas, 10, nil, PadraoMinimo)
	require.Equal(t, 5.5, p)
	require.Equal(t, TipoCorretor, tipo)
}

func TestValidarTaxas(t *testing.T) {
	require.True(t, ValidarTaxas(tabelaCompleta()))
	require.True(t, ValidarTaxas(TaxasComissao{Padrao: 4.0}))
	require.False(t, ValidarTaxas(TaxasComissao{
		Especiais: []TaxaEspecial{{Percentual: 5.0}},
	}))
}
