package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	layoutCache    *cache.RedisLayoutCache
	recentIndex    i.RecentIndex
	sessionStore   i.SessionStore
	jwtTokenizer   i.Tokenizer
	mazeService    *service.MazeService
	sessionManager *service.SessionManager
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func newLogger(name, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func fatal(format string, args ...any) {
	appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func info(msg string) {
	appLogger.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	info("Connected to Redis")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	info("Maze repository initialized")
}

func initLayoutCache(client *redis.Client) {
	layoutCache = cache.NewRedisLayoutCache(client, "vinom", config.Envs.CacheTTLSeconds)
	info("Layout cache initialized")
}

func initRecentIndex(client *redis.Client) {
	recentIndex = sortedstorage.NewRedisRecentIndex(client, "vinom:maze:recent", int64(config.Envs.RecentCapacity), config.Envs.RecentTTLSeconds)
	info("Recent index initialized")
}

func initSessionStore(client *redis.Client) {
	sessionStore = cache.NewRedisSessionStore(client, "vinom")
	info("Session store initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	info("JWT Tokenizer initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.Config{
		Repo:  mazeRepo,
		Cache: layoutCache,
		Index: recentIndex,
		Defaults: service.Defaults{
			Width:      config.Envs.MazeWidth,
			Height:     config.Envs.MazeHeight,
			CenterRoom: config.Envs.MazeCenterRoom,
			Seed:       config.Envs.MazeSeed,
		},
		Logger: newLogger("MAZE-SERVICE", config.ColorBlue),
	})
	if err != nil {
		fatal("Creating maze service: %v", err)
	}
	info("Maze service initialized")
}

func initSessionManager() {
	var err error
	sessionManager, err = service.NewSessionManager(&service.SessionConfig{
		Mazes:     mazeService,
		Store:     sessionStore,
		Tokenizer: jwtTokenizer,
		Locker:    layoutCache,
		TTL:       time.Duration(config.Envs.SessionTTLSeconds) * time.Second,
		Logger:    newLogger("SESSION-MANAGER", config.ColorCyan),
	})
	if err != nil {
		fatal("Creating session manager: %v", err)
	}
	info("Session manager initialized")
}

func initMazeController() {
	mazeController = mazeapi.NewMazeController(mazeService, sessionManager)
	info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: mazeapi.Authoriz(t),
	})
	info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)
	config.Load()
	gin.SetMode(config.Envs.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initLayoutCache(redisClient)
	initRecentIndex(redisClient)
	initSessionStore(redisClient)
	initJWTTokenizer()
	initMazeService()
	initSessionManager()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
