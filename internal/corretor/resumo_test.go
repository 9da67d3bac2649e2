package corretor

import (
	"testing"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMontarResumoCorretorDTO(t *testing.T) {
	c := Corretor{
		Model: gorm.Model{ID: 7},
		Nome:  "Marina",
		CRECI: "CRECI-SP 12345",
		Email: "marina@terravista.com.br",
	}
	vendas := []venda.Venda{
		{ComissaoCorretor: 1200, StatusComissao: models.ComissaoPaga},
		{ComissaoCorretor: 800, StatusComissao: models.ComissaoPendente},
		{ComissaoCorretor: 500, StatusComissao: models.ComissaoAprovada},
	}

	dto := MontarResumoCorretorDTO(c, vendas, 1300, 2)

	require.Equal(t, uint(7), dto.ID)
	require.Equal(t, 3, dto.VendasFechadas)
	require.Equal(t, 2, dto.NotasEmAberto)
	require.Equal(t, 1200.0, dto.ComissaoRecebida)
	require.Equal(t, 1300.0, dto.ComissaoAReceber)
	require.Equal(t, 1300.0, dto.ValorSemNota)
}

func TestMontarResumoCorretorDTOSemVendas(t *testing.T) {
	dto := MontarResumoCorretorDTO(Corretor{}, nil, 0, 0)

	require.Zero(t, dto.VendasFechadas)
	require.Zero(t, dto.ComissaoRecebida)
	require.Zero(t, dto.ComissaoAReceber)
}
