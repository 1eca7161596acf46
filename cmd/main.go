package main

import (
	"app/gates/server"
	storage "app/gates/storage/postgres"
	"app/iternal/config"
	"app/iternal/logger"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" //драйвер postgres
	goose "github.com/pressly/goose/v3"
)

func main() {

	cfg := config.MustLoad()

	log := logger.MustInitLogger(cfg)

	// DB_HOST берётся из среды (docker-compose), иначе из конфига
	dbhost := os.Getenv("DB_HOST")
	if dbhost == "" {
		dbhost = cfg.DB.Host
	}
	connstr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s sslmode=%s", cfg.DB.User, cfg.DB.Pass, cfg.DB.Name, dbhost, cfg.DB.Ssl)
	conn, err := sqlx.Connect("postgres", connstr)
	if err != nil {
		panic(err)
	}
	db := storage.NewDB(conn, log)
	//накатываем миграцию
	err = goose.Up(conn.DB, "./gates/storage/migrations")
	if err != nil {
		panic(err)
	}

	router := gin.Default()
	_ = server.NewServer(db, db, log, router)
	restServerAddr := cfg.Rest.Host + ":" + cfg.Rest.Port
	err = router.Run(restServerAddr)
	if err != nil {
		panic(err)
	}
}
