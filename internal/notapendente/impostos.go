// internal/notapendente/impostos.go
package notapendente

// Aliquotas agrupa os percentuais de retenção aplicados sobre o valor do serviço.
type Aliquotas struct {
	ISS    float64
	PIS    float64
	COFINS float64
	IR     float64
	CSLL   float64
}

// AliquotasPadrao são as retenções usuais para comissão de corretagem PJ:
// ISS municipal de 5%, PIS 0,65%, COFINS 3%, IR 1,5% e CSLL 1%.
var AliquotasPadrao = Aliquotas{
	ISS:    5.0,
	PIS:    0.65,
	COFINS: 3.0,
	IR:     1.5,
	CSLL:   1.0,
}

// CalcularImpostos monta o detalhamento tributário da nota a partir do valor
// do serviço. Recalculado sempre que o valor ou a taxa da nota é editado.
func CalcularImpostos(valor float64, a Aliquotas) Impostos {
	linha := func(aliquota float64) Imposto {
		return Imposto{Aliquota: aliquota, Valor: valor * aliquota / 100}
	}
	imp := Impostos{
		ISS:    linha(a.ISS),
		PIS:    linha(a.PIS),
		COFINS: linha(a.COFINS),
		IR:     linha(a.IR),
		CSLL:   linha(a.CSLL),
	}
	imp.Total = imp.ISS.Valor + imp.PIS.Valor + imp.COFINS.Valor + imp.IR.Valor + imp.CSLL.Valor
	return imp
}
