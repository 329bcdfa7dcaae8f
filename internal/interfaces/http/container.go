package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	articleapp "vitalis/internal/application/article"
	authapp "vitalis/internal/application/auth"
	brandapp "vitalis/internal/application/brand"
	categoryapp "vitalis/internal/application/category"
	contactapp "vitalis/internal/application/contact"
	expertapp "vitalis/internal/application/expert"
	faqapp "vitalis/internal/application/faq"
	reviewapp "vitalis/internal/application/review"
	settingapp "vitalis/internal/application/setting"
	supplementapp "vitalis/internal/application/supplement"
	userapp "vitalis/internal/application/user"
	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/infrastructure/config"
	"vitalis/internal/infrastructure/email"
	"vitalis/internal/infrastructure/metrics"
	"vitalis/internal/infrastructure/repository"
	"vitalis/internal/infrastructure/storage"
	"vitalis/internal/interfaces/http/handlers"
	"vitalis/internal/interfaces/http/middleware"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/services/markdown"
	"vitalis/internal/shared/slug"
)

// Container wires repositories, services, handlers and middleware together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	tokens      *auth.TokenService
	registry    *prometheus.Registry
	collector   *metrics.Collector
	rateLimiter *middleware.RateLimiter

	authHandler       *handlers.AuthHandler
	userHandler       *handlers.UserHandler
	articleHandler    *handlers.ArticleHandler
	reviewHandler     *handlers.ReviewHandler
	supplementHandler *handlers.SupplementHandler
	brandHandler      *handlers.BrandHandler
	expertHandler     *handlers.ExpertHandler
	categoryHandler   *handlers.CategoryHandler
	faqHandler        *handlers.FAQHandler
	settingHandler    *handlers.SettingHandler
	uploadHandler     *handlers.UploadHandler
	contactHandler    *handlers.ContactHandler
	healthHandler     *handlers.HealthHandler
}

// NewContainer builds the full dependency graph. redisClient may be nil, in
// which case rate limiting is disabled.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	slug.RegisterValidation()

	// Infrastructure services.
	c.tokens = auth.NewTokenService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpDays)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	renderer := markdown.NewService()

	c.registry = prometheus.NewRegistry()
	c.collector = metrics.NewCollector(c.registry)

	store, err := storage.NewLocalStorage(cfg.Upload.Root, cfg.Upload.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	mailer := email.NewSMTPMailer(&cfg.Email)

	if !cfg.RateLimit.Enabled {
		redisClient = nil
	}
	c.rateLimiter = middleware.NewRateLimiter(
		redisClient,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	supplementRepo := repository.NewSupplementRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	expertRepo := repository.NewExpertRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Application services.
	authService := authapp.NewService(userRepo, hasher, c.tokens)
	userService := userapp.NewService(userRepo, hasher)
	articleService := articleapp.NewService(articleRepo, renderer)
	reviewService := reviewapp.NewService(reviewRepo, renderer)
	supplementService := supplementapp.NewService(supplementRepo, renderer)
	brandService := brandapp.NewService(brandRepo)
	expertService := expertapp.NewService(expertRepo, renderer)
	categoryService := categoryapp.NewService(categoryRepo)
	faqService := faqapp.NewService(faqRepo, renderer)
	settingService := settingapp.NewService(settingRepo)
	contactService := contactapp.NewService(mailer, cfg.Email.ContactInbox)

	// Handlers.
	c.authHandler = handlers.NewAuthHandler(authService, c.tokens, cfg.Auth.Cookie)
	c.userHandler = handlers.NewUserHandler(userService)
	c.articleHandler = handlers.NewArticleHandler(articleService)
	c.reviewHandler = handlers.NewReviewHandler(reviewService)
	c.supplementHandler = handlers.NewSupplementHandler(supplementService)
	c.brandHandler = handlers.NewBrandHandler(brandService)
	c.expertHandler = handlers.NewExpertHandler(expertService)
	c.categoryHandler = handlers.NewCategoryHandler(categoryService)
	c.faqHandler = handlers.NewFAQHandler(faqService)
	c.settingHandler = handlers.NewSettingHandler(settingService)
	c.uploadHandler = handlers.NewUploadHandler(store, c.collector, cfg.Upload)
	c.contactHandler = handlers.NewContactHandler(contactService)
	c.healthHandler = handlers.NewHealthHandler(db)

	return c, nil
}

// Engine returns the underlying gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
