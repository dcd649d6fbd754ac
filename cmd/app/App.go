package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"marketChat/configs"
	"marketChat/internal/cache"
	"marketChat/internal/handlers"
	"marketChat/internal/repositories"
	"marketChat/internal/servers/database"
	"marketChat/internal/servers/http"
	"marketChat/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	messageRepo := repositories.NewMessageRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	profileTTL := time.Duration(app.configs.Viper.GetInt("cache.profile_ttl_seconds")) * time.Second
	profileCache := cache.NewProfileCache(app.redis, app.ctx, profileTTL, profileRepo)

	messagingService := services.NewMessagingService(messageRepo)
	conversationService := services.NewConversationService(messageRepo, profileCache)
	listingService := services.NewListingService(listingRepo)

	restHandler := handlers.NewRestHandler(
		messagingService,
		conversationService,
		listingService,
		[]byte(app.configs.Viper.GetString("identity.jwt_secret")),
	)

	http.NewHttpServer(app.ctx, app.configs, restHandler).Run()
}

func (app *App) initializeRedis() {
	addr := fmt.Sprintf("%s:%d",
		app.configs.Viper.GetString("redis.host"),
		app.configs.Viper.GetInt("redis.port"),
	)
	app.redis = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
