package corretor

type ResumoCorretorDTO struct {
	ID               uint    `json:"id"`
	Nome             string  `json:"nome"`
	Sobrenome        string  `json:"sobrenome"`
	Email            string  `json:"email"`
	CRECI            string  `json:"creci"`
	CNPJ             string  `json:"cnpj"`
	Telefone         string  `json:"telefone"`
	Foto             string  `json:"foto"`
	VendasFechadas   int     `json:"vendasFechadas"`
	NotasEmAberto    int     `json:"notasEmAberto"`
	ComissaoRecebida float64 `json:"comissaoRecebida"`
	ComissaoAReceber float64 `json:"comissaoAReceber"`
	ValorSemNota     float64 `json:"valorSemNota"` // comissão ainda aguardando emissão de NFS-e
}
