package notapendente

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcularImpostos(t *testing.T) {
	imp := CalcularImpostos(10000, AliquotasPadrao)

	require.Equal(t, 500.0, imp.ISS.Valor)    // 5%
	require.Equal(t, 65.0, imp.PIS.Valor)     // 0,65%
	require.Equal(t, 300.0, imp.COFINS.Valor) // 3%
	require.Equal(t, 150.0, imp.IR.Valor)     // 1,5%
	require.Equal(t, 100.0, imp.CSLL.Valor)   // 1%
	require.Equal(t, 1115.0, imp.Total)

	require.Equal(t, 5.0, imp.ISS.Aliquota)
}

func TestCalcularImpostosValorZero(t *testing.T) {
	imp := CalcularImpostos(0, AliquotasPadrao)
	require.Equal(t, 0.0, imp.Total)
	require.Equal(t, 0.0, imp.ISS.Valor)
}
