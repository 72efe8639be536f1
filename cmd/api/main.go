package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"imageshare/cmd/app"
	"imageshare/internal/config"
	handlers "imageshare/internal/handler"
	"imageshare/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	auth := middleware.AuthMiddleware(cfg)

	// setting up routes
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", handler.Login).Methods(http.MethodPost)

	r.Handle("/upload", auth(http.HandlerFunc(handler.Upload))).Methods(http.MethodPost)
	r.HandleFunc("/images", handler.Feed).Methods(http.MethodGet)
	r.HandleFunc("/feed", handler.Feed).Methods(http.MethodGet)
	r.Handle("/delete/{imageId}", auth(http.HandlerFunc(handler.DeleteImage))).Methods(http.MethodDelete)

	r.Handle("/comment", auth(http.HandlerFunc(handler.AddComment))).Methods(http.MethodPost)
	r.HandleFunc("/comments/{imageId}", handler.GetComments).Methods(http.MethodGet)

	r.HandleFunc("/static/uploads/{filename}", handler.ServeUpload).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
