package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-volume-bot/src/container"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		if err = godotenv.Load(); err != nil {
			log.Println(err)
		}
	}

	container := container.InitServiceContainer()
	if container.Db != nil {
		defer container.Db.Close()
	}

	// The exchange has to be reachable before any state is created.
	if err := container.Aster.Ping(); err != nil {
		log.Fatalf("Cannot connect to Asterdex API: %s", err.Error())
	}

	serverTime, err := container.Aster.GetServerTime()
	if err != nil {
		log.Fatalf("Cannot read Asterdex server time: %s", err.Error())
	}
	log.Printf("Connection to Asterdex successful, server time: %d", serverTime)

	container.Reporter.PrintBanner()

	if container.BookListener != nil {
		container.BookListener.Start(container.Config.WsDsn)
	}

	container.StartHttpServer()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChannel
		log.Println("STOPPING BOT...")
		container.Engine.Stop()
	}()

	container.Engine.Run()
	container.Engine.Shutdown()

	log.Println("Bot stopped")
}
