package container

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-volume-bot/src/client"
	"gitlab.com/open-soft/go-volume-bot/src/config"
	"gitlab.com/open-soft/go-volume-bot/src/controller"
	"gitlab.com/open-soft/go-volume-bot/src/repository"
	"gitlab.com/open-soft/go-volume-bot/src/service/exchange"
	"gitlab.com/open-soft/go-volume-bot/src/utils"
)

type Container struct {
	Config        *config.BotConfig
	Aster         *client.Aster
	Engine        *exchange.CycleEngine
	Reporter      *exchange.StatusReporter
	BookListener  *exchange.BookStreamListener
	BotController *controller.BotController
	Db            *sql.DB
}

func InitServiceContainer() Container {
	botConfig := config.LoadBotConfig()

	var ctx = context.Background()

	httpClient := client.HttpClient{
		ReadTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 7,
	}

	aster := client.Aster{
		ApiKey:     botConfig.ApiKey,
		ApiSecret:  botConfig.ApiSecret,
		DSN:        botConfig.BaseUrl,
		HttpClient: &httpClient,
	}

	formatter := utils.Formatter{}
	timeService := utils.TimeHelper{}

	var rdb *redis.Client
	if os.Getenv("REDIS_DSN") != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     os.Getenv("REDIS_DSN"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})
	}

	var db *sql.DB
	var statRepository *repository.StatRepository
	if os.Getenv("DATABASE_DSN") != "" {
		var err error
		db, err = sql.Open("mysql", os.Getenv("DATABASE_DSN"))
		if err != nil {
			log.Fatalf("MySQL can't connect: %s", err.Error())
		}

		db.SetMaxIdleConns(8)
		db.SetMaxOpenConns(8)
		db.SetConnMaxLifetime(time.Minute)

		statRepository = &repository.StatRepository{DB: db}
		if err = statRepository.EnsureSchema(); err != nil {
			log.Fatalf("MySQL schema: %s", err.Error())
		}
	}

	precisionResolver := exchange.PrecisionResolver{
		ExchangeApi: &aster,
		Formatter:   &formatter,
		RDB:         rdb,
		Ctx:         &ctx,
		CacheTTL:    time.Minute * 5,
	}

	ladderCalculator := exchange.LadderCalculator{
		Formatter: &formatter,
	}

	reporter := exchange.StatusReporter{
		Config: botConfig,
	}

	var bookListener *exchange.BookStreamListener
	if botConfig.WsDsn != "" {
		bookListener = &exchange.BookStreamListener{
			Symbol: botConfig.Symbol,
		}
	}

	engine := exchange.CycleEngine{
		ExchangeApi:       &aster,
		OrderApi:          &aster,
		PrecisionResolver: &precisionResolver,
		LadderCalculator:  &ladderCalculator,
		Accounting:        exchange.NewAccountingTracker(time.Now()),
		Reporter:          &reporter,
		TimeService:       &timeService,
		Formatter:         &formatter,
		Config:            botConfig,
		Ctx:               ctx,
	}

	if bookListener != nil {
		engine.BookSource = bookListener
	}
	if statRepository != nil {
		engine.StatRecorder = statRepository
	}

	botController := controller.BotController{
		ExchangeApi: &aster,
		Engine:      &engine,
		StartedAt:   time.Now(),
	}

	return Container{
		Config:        botConfig,
		Aster:         &aster,
		Engine:        &engine,
		Reporter:      &reporter,
		BookListener:  bookListener,
		BotController: &botController,
		Db:            db,
	}
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/health/check", c.BotController.GetHealthCheckAction)
	http.HandleFunc("/status", c.BotController.GetStatusAction)

	go func() {
		_ = http.ListenAndServe(":8080", nil)
	}()
}
