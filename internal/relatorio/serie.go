// internal/relatorio/serie.go
package relatorio

import (
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
)

// SerieMensal é a evolução da comissão nos últimos seis meses (mês corrente
// incluso), do mais antigo para o mais recente. Pagas e Pendentes andam em
// paralelo com Meses, posição a posição.
type SerieMensal struct {
	Meses     []string  `json:"meses"`
	Pagas     []float64 `json:"pagas"`
	Pendentes []float64 `json:"pendentes"`
}

var mesesAbreviados = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

const mesesDaSerie = 6

// CalcularSerieMensal distribui as comissões das vendas pelos seis meses que
// terminam no mês de agora. "Pagas" soma comissões pagas; "Pendentes" soma as
// pendentes e aprovadas. Vendas fora da janela são ignoradas; a virada de ano
// é tratada pelo índice absoluto de mês.
func CalcularSerieMensal(vendas []venda.Venda, agora time.Time) SerieMensal {
	serie := SerieMensal{
		Meses:     make([]string, mesesDaSerie),
		Pagas:     make([]float64, mesesDaSerie),
		Pendentes: make([]float64, mesesDaSerie),
	}

	// índice absoluto do mês corrente; a posição 0 da série fica 5 meses atrás
	atual := agora.Year()*12 + int(agora.Month()) - 1
	for i := 0; i < mesesDaSerie; i++ {
		abs := atual - (mesesDaSerie - 1 - i)
		serie.Meses[i] = mesesAbreviados[((abs%12)+12)%12]
	}

	for _, v := range vendas {
		abs := v.DataVenda.Year()*12 + int(v.DataVenda.Month()) - 1
		pos := abs - (atual - (mesesDaSerie - 1))
		if pos < 0 || pos >= mesesDaSerie {
			continue
		}
		switch v.StatusComissao {
		case models.ComissaoPaga:
			serie.Pagas[pos] += v.ComissaoCorretor
		case models.ComissaoPendente, models.ComissaoAprovada:
			serie.Pendentes[pos] += v.ComissaoCorretor
		}
	}
	return serie
}
