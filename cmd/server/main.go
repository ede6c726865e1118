package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/SzymonTokarzProgramista/HikerApp/internal/api"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/config"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/database"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/posts"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/storage"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Schema must exist before the first request is accepted.
	if err := database.Migrate(db, &users.User{}, &posts.Post{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	store, err := storage.New(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("failed to prepare upload dir: %v", err)
	}

	server := api.NewServer(cfg, users.NewRepo(db), posts.NewRepo(db), store)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.Router(),
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("closing database: %v", err)
	}
}
