package main

import (
	"log"
	"net/http"
	"time"

	"gourmet-burgers/api-gateway/internal/gateway"
	"gourmet-burgers/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load().Gateway

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: cfg.OrderSvcURL,
		StatsSvcURL: cfg.StatsSvcURL,
	}, &http.Client{Timeout: 30 * time.Second})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(r)

	log.Printf("API Gateway starting on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
