package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopassist-backend/api/controllers"
	"github.com/angelmondragon/shopassist-backend/api/middleware"
	"github.com/angelmondragon/shopassist-backend/internal/chatbot"
	"github.com/angelmondragon/shopassist-backend/internal/chathistory"
	checkoutsvc "github.com/angelmondragon/shopassist-backend/internal/checkout"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/auth"
	"github.com/angelmondragon/shopassist-backend/pkg/config"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/angelmondragon/shopassist-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	verifier auth.Verifier,
	gatherer prometheus.Gatherer,
	httpMetrics middleware.RequestObserver,
	productService products.Service,
	chatbotService chatbot.Service,
	historyService chathistory.Service,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	// a nil *redis.Client must not become a non-nil interface
	var (
		cachePinger controllers.Pinger
		idemStore   redis.IdempotencyStore
		limiter     redis.RateLimiter
	)
	if redisClient != nil {
		cachePinger, idemStore, limiter = redisClient, redisClient, redisClient
	}

	r.Get("/", controllers.Home())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cachePinger))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	chatbotPolicy := middleware.RateLimitPolicy{
		Name:   "chatbot",
		Limit:  cfg.RateLimit.ChatbotLimit,
		Window: cfg.RateLimit.ChatbotWindow,
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
		r.Use(middleware.Auth(verifier, logg))

		r.Get("/products", controllers.ListProducts(productService, logg))
		r.With(middleware.RateLimit(chatbotPolicy, limiter, logg)).Post("/chatbot", controllers.ChatbotQuery(chatbotService, logg))
		r.Get("/chat_history", controllers.ChatHistory(historyService, logg))
		r.With(middleware.Idempotency(idemStore, logg)).Post("/checkout", controllers.Checkout(checkoutService, logg))
	})

	return r
}
