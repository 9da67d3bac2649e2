// internal/notapendente/lifecycle.go
package notapendente

import (
	"errors"
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
)

var (
	ErrNotaVencidaNaoEditavel = errors.New("nota vencida não admite edição; apenas emissão")
	ErrNotaJaSubmetida        = errors.New("nota já submetida")
	ErrStatusDesconhecido     = errors.New("status de nota desconhecido")
)

// StatusEfetivo deriva o status exibido a partir do gravado e do relógio:
// uma nota "Pendente" com vencimento no passado é "Vencida". Sempre calculado
// na leitura — nunca gravado — porque "agora" anda.
func StatusEfetivo(n NotaPendente, agora time.Time) string {
	if n.Status == models.NotaPendentePendente && n.DataVencimento.Before(agora) {
		return models.NotaPendenteVencida
	}
	return n.Status
}

// DiasVencidos devolve há quantos dias inteiros a nota está vencida; 0 se não está.
func DiasVencidos(n NotaPendente, agora time.Time) int {
	if StatusEfetivo(n, agora) != models.NotaPendenteVencida {
		return 0
	}
	return int(agora.Sub(n.DataVencimento).Hours() / 24)
}

// CamposEditaveis é o conjunto de campos que o corretor pode alterar antes da emissão.
type CamposEditaveis struct {
	ValorComissao    *float64 `json:"valorComissao,omitempty" validate:"omitempty,gt=0"`
	TaxaComissao     *float64 `json:"taxaComissao,omitempty" validate:"omitempty,gt=0"`
	DescricaoServico *string  `json:"descricaoServico,omitempty"`
	CodigoServico    *string  `json:"codigoServico,omitempty"`
	DataVencimento   *string  `json:"dataVencimento,omitempty"` // RFC3339
}

// AplicarEdicao altera os campos editáveis de uma nota em rascunho ou pendente.
// Nota vencida só aceita emissão: editar o vencimento depois do fato mudaria o
// histórico de atraso, então a edição inteira é recusada sem efeito parcial.
func AplicarEdicao(n *NotaPendente, campos CamposEditaveis, agora time.Time) error {
	switch StatusEfetivo(*n, agora) {
	case models.NotaPendenteRascunho, models.NotaPendentePendente:
		// segue
	case models.NotaPendenteVencida:
		return ErrNotaVencidaNaoEditavel
	default:
		return ErrStatusDesconhecido
	}

	if campos.DataVencimento != nil {
		t, err := time.Parse(time.RFC3339, *campos.DataVencimento)
		if err != nil {
			return err
		}
		n.DataVencimento = t
	}
	if campos.ValorComissao != nil {
		n.ValorComissao = *campos.ValorComissao
	}
	if campos.TaxaComissao != nil {
		n.TaxaComissao = *campos.TaxaComissao
	}
	if campos.DescricaoServico != nil {
		n.DescricaoServico = *campos.DescricaoServico
	}
	if campos.CodigoServico != nil {
		n.CodigoServico = *campos.CodigoServico
	}

	// detalhamento tributário acompanha o valor
	if campos.ValorComissao != nil {
		n.Impostos = CalcularImpostos(n.ValorComissao, AliquotasPadrao)
	}
	return nil
}

// Submeter marca o rascunho como pronto para emissão (Rascunho → Pendente).
// Submeter não emite documento fiscal; a emissão acontece no portal externo.
func Submeter(n *NotaPendente) error {
	if n.Status != models.NotaPendenteRascunho {
		return ErrNotaJaSubmetida
	}
	n.Status = models.NotaPendentePendente
	return nil
}
