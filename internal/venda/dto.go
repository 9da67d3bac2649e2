// internal/venda/dto.go
package venda

// EmissaoNotaFiscalRequest é o payload do anexo de nota fiscal emitida.
// Os quatro campos são obrigatórios; sem qualquer um deles a transição não acontece.
type EmissaoNotaFiscalRequest struct {
	NumeroNotaFiscal string  `json:"numeroNotaFiscal" validate:"required"`
	DataEmissao      string  `json:"dataEmissao" validate:"required"` // RFC3339
	Arquivo          string  `json:"arquivo" validate:"required"`
	Valor            float64 `json:"valor" validate:"required,gt=0"`
}

// RecusaNotaFiscalRequest é o payload da recusa pela construtora
type RecusaNotaFiscalRequest struct {
	Motivo string `json:"motivo"`
}

type vendaCreateDTO struct {
	CorretorID           uint    `json:"corretorId" validate:"required"`
	EmpreendimentoID     uint    `json:"empreendimentoId" validate:"required"`
	Cliente              string  `json:"cliente"`
	Unidade              string  `json:"unidade"`
	Valor                float64 `json:"valor" validate:"required,gt=0"`
	DataVenda            string  `json:"dataVenda"` // RFC3339; vazio usa o momento atual
	ComissaoCorretor     float64 `json:"comissaoCorretor"`
	TaxaComissaoCorretor float64 `json:"taxaComissaoCorretor"`
	NotaFiscalExigida    *bool   `json:"notaFiscalExigida"` // nil = exigida
}
