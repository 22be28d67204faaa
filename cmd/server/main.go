package main

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rkuznetsov/inkwell/server"
	"github.com/rkuznetsov/inkwell/server/middlewares"
	"github.com/rkuznetsov/inkwell/utils"
	"github.com/rkuznetsov/inkwell/utils/dotenv"
	. "github.com/rkuznetsov/inkwell/utils/log"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	// The status store is optional: without redis the profile pages simply
	// report everyone as offline.
	statusStore, err := utils.GetOnlineStatusStore()
	if err != nil {
		Log.Warn("online status store unavailable: ", err)
		statusStore = nil
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middlewares.Identity(db, statusStore))

	handlers := &server.Handlers{DB: db, StatusStore: statusStore}
	handlers.RegisterRoutes(router)

	Log.Info("api server starts up")
	router.Run(":8080")
}
