// internal/notapendente/dto.go
package notapendente

import "time"

// CreateNotaDTO abre uma nota pendente para a comissão de uma venda.
type CreateNotaDTO struct {
	ValorComissao    float64 `json:"valorComissao"`
	TaxaComissao     float64 `json:"taxaComissao"`
	DataVencimento   string  `json:"dataVencimento" validate:"required"` // RFC3339
	DescricaoServico string  `json:"descricaoServico"`
	CodigoServico    string  `json:"codigoServico"`
}

// NotaPendenteDTO é a visão de leitura: o status devolvido é o efetivo
// (Vencida quando cabível) e os dias de atraso saem calculados.
type NotaPendenteDTO struct {
	ID               uint      `json:"id"`
	VendaID          uint      `json:"vendaId"`
	ConstrutoraID    uint      `json:"construtoraId"`
	EmpreendimentoID uint      `json:"empreendimentoId"`
	Cliente          string    `json:"cliente"`
	Unidade          string    `json:"unidade"`
	ValorComissao    float64   `json:"valorComissao"`
	TaxaComissao     float64   `json:"taxaComissao"`
	DataVencimento   time.Time `json:"dataVencimento"`
	Status           string    `json:"status"`
	DiasVencidos     int       `json:"diasVencidos,omitempty"`
	DescricaoServico string    `json:"descricaoServico"`
	CodigoServico    string    `json:"codigoServico"`
	Impostos         Impostos  `json:"impostos"`
}

// ToDTO projeta a nota com o status derivado do relógio informado.
func ToDTO(n NotaPendente, agora time.Time) NotaPendenteDTO {
	return NotaPendenteDTO{
		ID:               n.ID,
		VendaID:          n.VendaID,
		ConstrutoraID:    n.ConstrutoraID,
		EmpreendimentoID: n.EmpreendimentoID,
		Cliente:          n.Cliente,
		Unidade:          n.Unidade,
		ValorComissao:    n.ValorComissao,
		TaxaComissao:     n.TaxaComissao,
		DataVencimento:   n.DataVencimento,
		Status:           StatusEfetivo(n, agora),
		DiasVencidos:     DiasVencidos(n, agora),
		DescricaoServico: n.DescricaoServico,
		CodigoServico:    n.CodigoServico,
		Impostos:         n.Impostos,
	}
}
