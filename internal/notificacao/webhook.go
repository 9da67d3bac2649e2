package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/TerraVistaImoveis/api-corretor/internal/utils"
)

func enviar(payload map[string]string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// EnviarWebhookNotaRecusada avisa que a construtora recusou uma nota anexada
func EnviarWebhookNotaRecusada(numeroNota, motivo string) {
	enviar(map[string]string{
		"mensagem":   "Alerta: nota fiscal recusada pela construtora",
		"numeroNota": numeroNota,
		"motivo":     motivo,
	})
}

// EnviarWebhookNotaVencida avisa que uma nota pendente passou do vencimento
func EnviarWebhookNotaVencida(cliente string, valor float64, diasVencidos int) {
	enviar(map[string]string{
		"mensagem":     "Alerta: nota pendente vencida sem emissão",
		"cliente":      cliente,
		"valor":        utils.FormatarMoeda(valor),
		"diasVencidos": strconv.Itoa(diasVencidos),
	})
}
