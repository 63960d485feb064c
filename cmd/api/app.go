package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/animai-studio/docs"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/controller"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/route"
	"github.com/hugohenrick/animai-studio/internal/adapter/repository"
	"github.com/hugohenrick/animai-studio/internal/infrastructure/database"
	"github.com/hugohenrick/animai-studio/pkg/auth"
	"github.com/hugohenrick/animai-studio/pkg/chat"
	"github.com/hugohenrick/animai-studio/pkg/generator"
	"github.com/hugohenrick/animai-studio/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router         *gin.Engine
	db             *database.PostgresDB
	log            logger.Logger
	jwtService     *auth.JWTService
	authController *controller.AuthController
	chatController *controller.ChatController
	planController *controller.PlanController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Configurar serviço de tokens
	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar repositórios: a variante remota (PostgreSQL, por usuário) e a
	// variante local (histórico de convidado em arquivo)
	userRepo := repository.NewUserRepository(db)
	remoteChatRepo := repository.NewChatRepository(db)

	localStorePath := os.Getenv("GUEST_HISTORY_PATH")
	if localStorePath == "" {
		localStorePath = repository.DefaultLocalStorePath()
	}
	localChatRepo := repository.NewLocalChatRepository(localStorePath)

	// Cliente do backend de geração de animações
	generatorURL := os.Getenv("GENERATOR_URL")
	if generatorURL == "" {
		generatorURL = "http://localhost:9090"
	}
	genClient := generator.NewClient(generatorURL)

	// Orquestrador de conversas
	orchestrator := chat.NewOrchestrator(localChatRepo, remoteChatRepo, genClient, log)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService)
	chatController := controller.NewChatController(orchestrator)
	planController := controller.NewPlanController()

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// Configurar CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	return &App{
		router:         router,
		db:             db,
		log:            log,
		jwtService:     jwtService,
		authController: authController,
		chatController: chatController,
		planController: planController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, a.authController, a.jwtService)
	route.SetupChatRoutes(api, a.chatController, a.jwtService)
	route.SetupPlanRoutes(api, a.planController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
