package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/TerraVistaImoveis/api-corretor/internal/auth"
	"github.com/TerraVistaImoveis/api-corretor/internal/construtora"
	"github.com/TerraVistaImoveis/api-corretor/internal/corretor"
	"github.com/TerraVistaImoveis/api-corretor/internal/empreendimento"
	"github.com/TerraVistaImoveis/api-corretor/internal/notapendente"
	"github.com/TerraVistaImoveis/api-corretor/internal/relatorio"
	"github.com/TerraVistaImoveis/api-corretor/internal/utils/db"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&corretor.Corretor{},
		&construtora.Construtora{},
		&empreendimento.Empreendimento{},
		&venda.Venda{},
		&notapendente.NotaPendente{},
		&auth.RefreshToken{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	corretorHandler := corretor.NewHandler(conn)
	construtoraHandler := construtora.NewHandler(conn)
	empreendimentoHandler := empreendimento.NewHandler(conn)
	vendaHandler := venda.NewHandler(conn)
	notaHandler := notapendente.NewHandler(conn)
	relatorioHandler := relatorio.NewHandler(conn)

	// Router
	r := mux.NewRouter()

	// Rotas públicas: login, cadastro e ciclo do refresh token
	r.HandleFunc("/corretores/login", corretorHandler.Login).Methods("POST")
	r.HandleFunc("/corretores", corretorHandler.CriarCorretor).Methods("POST")
	r.HandleFunc("/construtoras/login", construtoraHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(conn)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(conn)).Methods("POST")
	r.HandleFunc("/.well-known/jwks.json", auth.JWKSHandler).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Corretores
	api.HandleFunc("/corretores", corretorHandler.ListarCorretores).Methods("GET")
	api.HandleFunc("/corretores/me", corretorHandler.Me).Methods("GET")
	api.HandleFunc("/corretores/resumo", corretorHandler.ObterResumoCorretor).Methods("GET")
	api.HandleFunc("/corretores/{id}", corretorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/corretores/{id}", corretorHandler.AtualizarCorretor).Methods("PUT")
	api.HandleFunc("/corretores/{id}", corretorHandler.DeletarCorretor).Methods("DELETE")
	api.HandleFunc("/corretores/{id}/resumo", corretorHandler.ObterResumoCorretor).Methods("GET")
	api.HandleFunc("/corretores/{id}/vendas", vendaHandler.ListByCorretor).Methods("GET")
	api.HandleFunc("/corretores/{id}/notas-pendentes", notaHandler.List).Methods("GET")
	api.HandleFunc("/corretores/{id}/dashboard", relatorioHandler.Dashboard).Methods("GET")

	// Construtoras e tabela de taxas
	api.HandleFunc("/construtoras", construtoraHandler.Create).Methods("POST")
	api.HandleFunc("/construtoras", construtoraHandler.List).Methods("GET")
	api.HandleFunc("/construtoras/{id}", construtoraHandler.GetByID).Methods("GET")
	api.HandleFunc("/construtoras/{id}", construtoraHandler.Update).Methods("PUT")
	api.HandleFunc("/construtoras/{id}", construtoraHandler.Delete).Methods("DELETE")
	api.HandleFunc("/construtoras/{id}/taxas-comissao", construtoraHandler.UpdateTaxas).Methods("PUT")
	api.HandleFunc("/construtoras/{id}/taxa-comissao", construtoraHandler.GetTaxaResolvida).Methods("GET")

	// Empreendimentos
	api.HandleFunc("/construtoras/{id}/empreendimentos", empreendimentoHandler.Create).Methods("POST")
	api.HandleFunc("/construtoras/{id}/empreendimentos", empreendimentoHandler.ListByConstrutora).Methods("GET")
	api.HandleFunc("/empreendimentos", empreendimentoHandler.ListAll).Methods("GET")
	api.HandleFunc("/empreendimentos/{eid}", empreendimentoHandler.Get).Methods("GET")
	api.HandleFunc("/empreendimentos/{eid}", empreendimentoHandler.Update).Methods("PUT")
	api.HandleFunc("/empreendimentos/{eid}", empreendimentoHandler.Delete).Methods("DELETE")

	// Vendas e ciclo da nota fiscal da venda
	api.Handle("/construtoras/{id}/vendas",
		auth.RequireConstrutora(http.HandlerFunc(vendaHandler.Create))).Methods("POST")
	api.HandleFunc("/construtoras/{id}/vendas", vendaHandler.ListByConstrutora).Methods("GET")
	api.Handle("/construtoras/{id}/notas-pendentes",
		auth.RequireConstrutora(http.HandlerFunc(notaHandler.ListByConstrutora))).Methods("GET")
	api.HandleFunc("/vendas/{vid}", vendaHandler.Get).Methods("GET")
	api.HandleFunc("/vendas/{vid}/nota-fiscal", vendaHandler.AnexarNota).Methods("POST")
	api.Handle("/vendas/{vid}/nota-fiscal/recusa",
		auth.RequireConstrutora(http.HandlerFunc(vendaHandler.RecusarNota))).Methods("PATCH")

	// Notas pendentes (rascunho até a emissão)
	api.HandleFunc("/vendas/{vid}/notas-pendentes", notaHandler.Create).Methods("POST")
	api.HandleFunc("/notas-pendentes/{nid}", notaHandler.Get).Methods("GET")
	api.HandleFunc("/notas-pendentes/{nid}", notaHandler.Update).Methods("PUT")
	api.HandleFunc("/notas-pendentes/{nid}/submissao", notaHandler.Submeter).Methods("PATCH")
	api.HandleFunc("/notas-pendentes/{nid}/emissao", notaHandler.Emitir).Methods("POST")

	// CORS para o front
	origens := []string{"http://localhost:3000"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origens = strings.Split(v, ",")
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origens,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
