package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"

	"github.com/introlligent/screener/internal/ai/completion"
	"github.com/introlligent/screener/pkg/fsx"
	"github.com/introlligent/screener/pkg/fsx/fsxs3"
	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/chat/chatapi"
	"github.com/introlligent/screener/screening/chat/chatinfra"
	"github.com/introlligent/screener/screening/chat/chatsrv"
	"github.com/introlligent/screener/screening/intake"
	"github.com/introlligent/screener/screening/intake/intakeapi"
	"github.com/introlligent/screener/screening/intake/intakeinfra"
	"github.com/introlligent/screener/screening/notify"
	"github.com/introlligent/screener/screening/profile"
	"github.com/introlligent/screener/screening/profile/profilesrv"
	"github.com/introlligent/screener/screening/project/projectinfra"
	"github.com/introlligent/screener/screening/project/projectsrv"
	"github.com/introlligent/screener/screening/screenapi"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Clients
	Completions *completion.Client
	OAuthConfig *oauth2.Config
	Mailer      notify.Sender

	// Services
	ProjectService   *projectsrv.Service
	ScreeningService *profilesrv.Service
	ChatService      *chatsrv.Service
	SessionService   *intakeapi.SessionService

	// API Handlers
	AuthHandlers   *intakeapi.AuthHandlers
	ScreenHandlers *screenapi.ScreenHandlers
	ChatHandlers   *chatapi.ChatHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}

	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. S3 Storage (screening refuses to run without it)
	awsBucket := os.Getenv("AWS_BUCKET")
	if awsBucket != "" {
		cfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "resumes")
	} else {
		logx.Warn("AWS_BUCKET is not set, resume screening endpoints will refuse requests")
	}

	// 4. Completion client
	c.Completions = completion.NewClient(
		os.Getenv("OPENAI_API_KEY"),
		os.Getenv("OPENAI_BASE_URL"),
		os.Getenv("OPENAI_MODEL"),
	)

	// 5. Google OAuth for Gmail access
	c.OAuthConfig = &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{gmail.GmailReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	// 6. SMTP for decision emails
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if smtpPort == 0 {
		smtpPort = 587
	}
	c.Mailer = notify.NewSMTPSender(
		os.Getenv("SMTP_SERVER"),
		smtpPort,
		os.Getenv("EMAIL_ADDRESS"),
		os.Getenv("EMAIL_PASSWORD"),
	)
}

func (c *Container) initServices() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}

	rules := profile.DefaultRules()
	contract := profile.DefaultContract()
	filter := intake.DefaultRules()

	// --- Repositories / Stores ---
	projectRepo := projectinfra.NewPostgresRepository(c.DB)
	tokenStore := intakeinfra.NewRedisTokenStore(c.Redis)
	chatStore := chatinfra.NewRedisStore(c.Redis)
	gmailSource := intakeinfra.NewGmailSource(c.OAuthConfig, filter.MaxMessages)

	// --- Domain Services ---
	c.SessionService = intakeapi.NewSessionService(jwtSecret, 24*time.Hour)
	c.ProjectService = projectsrv.New(projectRepo, c.FileSystem)

	screening, err := profilesrv.New(c.Completions, c.FileSystem, rules, contract)
	if err != nil {
		logx.Fatalf("invalid section contract: %v", err)
	}
	c.ScreeningService = screening

	c.ChatService = chatsrv.New(c.Completions, chatStore)

	// --- Handlers ---
	c.AuthHandlers = intakeapi.NewAuthHandlers(c.OAuthConfig, c.SessionService, tokenStore)
	c.ScreenHandlers = screenapi.NewScreenHandlers(
		c.ProjectService,
		c.ScreeningService,
		c.AuthHandlers,
		gmailSource,
		tokenStore,
		filter,
		rules,
		c.Mailer,
	)
	c.ChatHandlers = chatapi.NewChatHandlers(c.ChatService)
}
