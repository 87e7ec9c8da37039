package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/voteverse/internal/adapters/handler/http"
	"github.com/vncsmyrnk/voteverse/internal/adapters/repository/badgerdb"
	"github.com/vncsmyrnk/voteverse/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var addr, dataDir, cookieDomain string
	flag.StringVar(&addr, "addr", envOrDefault("LISTEN_ADDR", "0.0.0.0:8080"), "Listen address")
	flag.StringVar(&dataDir, "data-dir", envOrDefault("DATA_DIR", "data"), "Store directory")
	flag.StringVar(&cookieDomain, "cookie-domain", os.Getenv("COOKIE_DOMAIN"), "Cookie domain")
	flag.Parse()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		fmt.Println("Warning: JWT_SECRET not set")
	}

	store, err := badgerdb.Open(dataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	sessionRepo := badgerdb.NewSessionRepository(store)
	electionRepo := badgerdb.NewElectionRepository(store)

	sessionService := services.NewSessionService(sessionRepo, electionRepo)
	electionService := services.NewElectionService(electionRepo)
	ballotService := services.NewBallotService(electionRepo)
	resultsService := services.NewResultsService(electionRepo)

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoCandidates(context.Background(), electionRepo); err != nil {
			log.Fatalf("Error seeding demo candidates: %v", err)
		}
	}

	auth := http.NewAuthenticator([]byte(jwtSecret))
	handler := http.NewHandler(
		auth,
		http.NewSessionHandler(sessionService, []byte(jwtSecret), cookieDomain, stdhttp.SameSiteLaxMode),
		http.NewCandidateHandler(electionService),
		http.NewVotingHandler(electionService),
		http.NewBallotHandler(ballotService),
		http.NewResultsHandler(resultsService),
	)

	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
