package main

import (
	"groupstudy/internal/config"
	"groupstudy/internal/logger"
	"groupstudy/internal/mongo"
	"groupstudy/internal/mysql"
	"groupstudy/internal/routing"
	"groupstudy/pkg/middleware"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	db := mysql.LoadDB()
	defer db.Close()

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	r := mux.NewRouter()
	r.Use(middleware.Panic)
	r.Use(middleware.Metrics)

	routing.InitRoutes(r, db, mongoDB, logger)
	routing.StartServer(r)
}
