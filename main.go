package main

import (
	"log"
	"os"

	"github.com/wanjohi/darasa/core"
	logsvc "github.com/wanjohi/darasa/services/logger"
	csvdb "github.com/wanjohi/darasa/storage/database/csv"
)

func main() {
	std := log.New(os.Stdout, core.Conf.GetString("appName")+" : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger = logsvc.NewConsoleLogger(std)
	if core.Conf.GetString("rollbarToken") != "" {
		logger = logsvc.NewRollbarLogger(std)
	}

	db, err := csvdb.Open(core.Conf.GetString("dataDir"), logger)
	if err != nil {
		logger.Fatal("opening store failed", err)
	}
	if err := db.Init(); err != nil {
		logger.Fatal("initializing store failed", err)
	}
	logger.Info("store ready", map[string]interface{}{"dataDir": db.Dir()})
}
