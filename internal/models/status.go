// models/status.go
package models

// Convenção de status textual para a comissão de uma venda
const (
	ComissaoPendente = "Pendente"
	ComissaoAprovada = "Aprovada"
	ComissaoPaga     = "Paga"
)

// Convenção de status textual para a nota fiscal vinculada a uma venda
const (
	NotaPendente   = "Pendente"
	NotaRecebida   = "Recebida"
	NotaRecusada   = "Recusada"
	NotaNaoExigida = "Não Exigida"
)

// Convenção de status textual para notas pendentes do corretor.
// "Vencida" nunca é gravada: é derivada da data de vencimento na leitura.
const (
	NotaPendenteRascunho = "Rascunho"
	NotaPendentePendente = "Pendente"
	NotaPendenteVencida  = "Vencida"
)

// Valor usado nos filtros para "sem restrição"
const FiltroTodos = "todos"
