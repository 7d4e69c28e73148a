package auth

import (
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

func InitDB() *sql.DB {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr = connStr + "?sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("DB configuration error:", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		log.Fatal("DB is not responding:", err)
	}
	return db
}
