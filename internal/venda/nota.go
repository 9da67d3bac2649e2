// internal/venda/nota.go
package venda

import (
	"errors"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
)

var (
	ErrNotaNaoExigida  = errors.New("venda não exige nota fiscal")
	ErrNotaJaRecebida  = errors.New("nota fiscal já recebida para esta venda")
	ErrNotaNaoRecebida = errors.New("não há nota recebida para recusar")
)

// AnexarNotaFiscal aplica a transição de emissão na venda: o corretor anexou a
// nota emitida no portal e a venda passa a "Recebida" com os metadados da nota.
// Reenvio após recusa é permitido; o motivo anterior é limpo.
func AnexarNotaFiscal(v *Venda, numero string, dataEmissao time.Time, arquivo string) error {
	switch v.StatusNotaFiscal {
	case models.NotaNaoExigida:
		return ErrNotaNaoExigida
	case models.NotaRecebida:
		return ErrNotaJaRecebida
	}

	v.StatusNotaFiscal = models.NotaRecebida
	v.NumeroNotaFiscal = numero
	v.DataNotaFiscal = &dataEmissao
	v.ArquivoNotaFiscal = arquivo
	v.MotivoRecusa = ""
	return nil
}

// RecusarNotaFiscal registra a recusa da construtora. Só vale sobre nota
// recebida; o corretor pode reenviar depois via AnexarNotaFiscal.
func RecusarNotaFiscal(v *Venda, motivo string) error {
	if v.StatusNotaFiscal != models.NotaRecebida {
		return ErrNotaNaoRecebida
	}
	v.StatusNotaFiscal = models.NotaRecusada
	v.MotivoRecusa = motivo
	return nil
}
