package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/db"
	"github.com/pressfeedhq/pressfeed/services"
)

type Server struct {
	Config          *config.Config
	AuthRepository  db.AuthRepository
	GroupRepository db.GroupRepository
	AuthService     services.AuthService
	FeedService     services.FeedService
	PostService     services.PostService
	FollowService   services.FollowService
	CommentService  services.CommentService
	MediaService    services.MediaService
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to five seconds.
func (s *Server) Start() {
	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.setupRouter(),
	}

	go func() {
		log.Printf("Server started on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
