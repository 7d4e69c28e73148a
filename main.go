package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Camber/internal/auth"
	batch "Camber/internal/calc/batch"
	beam "Camber/internal/calc/beam"
	importer "Camber/internal/calc/importer"
	report "Camber/internal/calc/report"
	history "Camber/internal/history"
	repo "Camber/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	beamH := &beam.Handler{}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}
	importH := &importer.Handler{}
	historyH := &history.Handler{Repo: store}

	secureApi.HandleFunc("/tools/beam/calc", beamH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/beam/batch", batchH.Beam).Methods("POST")
	secureApi.HandleFunc("/tools/beam/import", importH.Beam).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
