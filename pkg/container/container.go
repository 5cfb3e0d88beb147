package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"dacosta-backend/internal/config"
	infraCache "dacosta-backend/internal/infrastructure/cache"
	"dacosta-backend/internal/infrastructure/database"
	"dacosta-backend/internal/infrastructure/media"
	"dacosta-backend/internal/infrastructure/storage"
	"dacosta-backend/pkg/cache"
	"dacosta-backend/pkg/jwt"

	"dacosta-backend/internal/domains/album"
	albumHandler "dacosta-backend/internal/domains/album/handler"
	albumRepo "dacosta-backend/internal/domains/album/repository"
	albumService "dacosta-backend/internal/domains/album/service"
	"dacosta-backend/internal/domains/artist"
	artistHandler "dacosta-backend/internal/domains/artist/handler"
	artistRepo "dacosta-backend/internal/domains/artist/repository"
	artistService "dacosta-backend/internal/domains/artist/service"
	"dacosta-backend/internal/domains/cart"
	cartHandler "dacosta-backend/internal/domains/cart/handler"
	cartRepo "dacosta-backend/internal/domains/cart/repository"
	cartService "dacosta-backend/internal/domains/cart/service"
	"dacosta-backend/internal/domains/event"
	eventHandler "dacosta-backend/internal/domains/event/handler"
	eventRepo "dacosta-backend/internal/domains/event/repository"
	eventService "dacosta-backend/internal/domains/event/service"
	"dacosta-backend/internal/domains/liveset"
	livesetHandler "dacosta-backend/internal/domains/liveset/handler"
	livesetRepo "dacosta-backend/internal/domains/liveset/repository"
	livesetService "dacosta-backend/internal/domains/liveset/service"
	"dacosta-backend/internal/domains/profile"
	profileHandler "dacosta-backend/internal/domains/profile/handler"
	profileRepo "dacosta-backend/internal/domains/profile/repository"
	profileService "dacosta-backend/internal/domains/profile/service"
	"dacosta-backend/internal/domains/track"
	trackHandler "dacosta-backend/internal/domains/track/handler"
	trackRepo "dacosta-backend/internal/domains/track/repository"
	trackService "dacosta-backend/internal/domains/track/service"
	"dacosta-backend/internal/domains/upload"
	uploadHandler "dacosta-backend/internal/domains/upload/handler"
	uploadService "dacosta-backend/internal/domains/upload/service"

	"github.com/shopspring/decimal"
)

// Container holds the whole dependency graph. Everything in it is a
// singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Redis      *infraCache.RedisCache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// Repositories
	ArtistRepo  artist.Repository
	AlbumRepo   album.Repository
	TrackRepo   track.Repository
	EventRepo   event.Repository
	LiveSetRepo liveset.Repository
	ProfileRepo profile.Repository
	CartRepo    cart.Repository

	// Services
	ArtistService  artist.Service
	AlbumService   album.Service
	TrackService   track.Service
	EventService   event.Service
	LiveSetService liveset.Service
	ProfileService profile.Service
	CartService    cart.Service
	UploadService  upload.Service

	// Handlers
	ArtistHandler  *artistHandler.ArtistHandler
	AlbumHandler   *albumHandler.AlbumHandler
	TrackHandler   *trackHandler.TrackHandler
	EventHandler   *eventHandler.EventHandler
	LiveSetHandler *livesetHandler.LiveSetHandler
	ProfileHandler *profileHandler.ProfileHandler
	CartHandler    *cartHandler.CartHandler
	UploadHandler  *uploadHandler.UploadHandler
}

// NewContainer builds the dependency graph in order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	log.Println("📋 Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	log.Println("🗄️  Connecting to PostgreSQL...")
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	log.Println("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		// The cart lives in Redis, so unlike a plain cache this is fatal.
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisCache
	c.Cache = redisCache
	log.Println("✅ Redis connected")

	log.Println("🪣 Connecting to MinIO...")
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	log.Println("⚙️  Initializing services...")
	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ArtistRepo = artistRepo.NewPostgresRepository(pool, c.Cache)
	c.AlbumRepo = albumRepo.NewPostgresRepository(pool, c.Cache)
	c.TrackRepo = trackRepo.NewPostgresRepository(pool, c.Cache)
	c.EventRepo = eventRepo.NewPostgresRepository(pool)
	c.LiveSetRepo = livesetRepo.NewPostgresRepository(pool, c.Cache)
	c.ProfileRepo = profileRepo.NewPostgresRepository(pool)

	cartTTL := time.Duration(c.Config.Shop.CartTTLHours) * time.Hour
	c.CartRepo = cartRepo.NewRedisRepository(c.Redis.Client, cartTTL)
}

func (c *Container) initServices() error {
	c.ArtistService = artistService.NewArtistService(c.ArtistRepo)
	c.AlbumService = albumService.NewAlbumService(c.AlbumRepo)
	c.TrackService = trackService.NewTrackService(c.TrackRepo)
	c.EventService = eventService.NewEventService(c.EventRepo, c.Config.EventLocation())
	c.LiveSetService = livesetService.NewLiveSetService(c.LiveSetRepo)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, c.JWTManager)

	pricing, err := shopPricing(c.Config.Shop)
	if err != nil {
		return err
	}
	c.CartService = cartService.NewCartService(c.CartRepo, pricing)

	c.UploadService = uploadService.NewUploadService(
		c.Storage,
		storage.NewImageProcessor(),
		media.NewProber(),
	)

	return nil
}

func (c *Container) initHandlers() {
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.AlbumHandler = albumHandler.NewAlbumHandler(c.AlbumService)
	c.TrackHandler = trackHandler.NewTrackHandler(c.TrackService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.LiveSetHandler = livesetHandler.NewLiveSetHandler(c.LiveSetService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
}

func shopPricing(cfg config.ShopConfig) (cart.Pricing, error) {
	freeOver, err := decimal.NewFromString(cfg.FreeShippingOver)
	if err != nil {
		return cart.Pricing{}, fmt.Errorf("invalid SHOP_FREE_SHIPPING_OVER: %w", err)
	}
	flatFee, err := decimal.NewFromString(cfg.FlatShippingFee)
	if err != nil {
		return cart.Pricing{}, fmt.Errorf("invalid SHOP_FLAT_SHIPPING_FEE: %w", err)
	}
	return cart.Pricing{FreeShippingOver: freeOver, FlatShippingFee: flatFee}, nil
}

// Cleanup releases infrastructure connections in reverse init order.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}

	log.Println("✅ Container cleaned up")
}
