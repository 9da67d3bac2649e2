// internal/comissao/resolver.go
package comissao

// Resolver devolve a taxa de comissão efetiva para um corretor em um
// empreendimento, seguindo a precedência:
//
//  1. regra com corretor E empreendimento iguais aos informados
//  2. regra só de empreendimento (sem corretor)
//  3. regra só de corretor (sem empreendimento)
//  4. taxa padrão da construtora
//  5. piso informado pelo chamador (ex.: PadraoMinimo)
//
// empreendimentoID = nil consulta a taxa "geral" do corretor (só os níveis 3+).
// Quando mais de uma regra cai no mesmo nível, vale a primeira da lista — é um
// desempate arbitrário, mantido por compatibilidade com os cadastros atuais.
// Nunca retorna erro: campo ausente é não-casamento, não falha.
func Resolver(taxas TaxasComissao, corretorID uint, empreendimentoID *uint, piso float64) (float64, string) {
	// nível 1: corretor + empreendimento
	if empreendimentoID != nil {
		for _, t := range taxas.Especiais {
			if t.CorretorID != nil && *t.CorretorID == corretorID &&
				t.EmpreendimentoID != nil && *t.EmpreendimentoID == *empreendimentoID {
				return t.Percentual, TipoCorretorEmpreendimento
			}
		}
		// nível 2: só empreendimento
		for _, t := range taxas.Especiais {
			if t.CorretorID == nil &&
				t.EmpreendimentoID != nil && *t.EmpreendimentoID == *empreendimentoID {
				return t.Percentual, TipoEmpreendimento
			}
		}
	}
	// nível 3: só corretor
	for _, t := range taxas.Especiais {
		if t.CorretorID != nil && *t.CorretorID == corretorID && t.EmpreendimentoID == nil {
			return t.Percentual, TipoCorretor
		}
	}
	// nível 4: padrão da construtora
	if taxas.Padrao > 0 {
		return taxas.Padrao, TipoPadrao
	}
	// nível 5: piso
	return piso, TipoPadrao
}

// ValidarTaxas confere se toda regra especial aponta para um corretor ou um
// empreendimento (ou ambos). Usada no cadastro, antes de gravar o JSONB.
func ValidarTaxas(taxas TaxasComissao) bool {
	for _, t := range taxas.Especiais {
		if t.CorretorID == nil && t.EmpreendimentoID == nil {
			return false
		}
	}
	return true
}
