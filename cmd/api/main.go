package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/qwikorder/qwikorder-backend/internal/database"
	"github.com/qwikorder/qwikorder-backend/internal/modules/admin"
	"github.com/qwikorder/qwikorder-backend/internal/modules/auth"
	"github.com/qwikorder/qwikorder-backend/internal/modules/billing"
	"github.com/qwikorder/qwikorder-backend/internal/modules/catalog"
	"github.com/qwikorder/qwikorder-backend/internal/modules/customer"
	"github.com/qwikorder/qwikorder-backend/internal/modules/order"
	"github.com/qwikorder/qwikorder-backend/internal/modules/seller"
	"github.com/qwikorder/qwikorder-backend/internal/modules/storefront"
)

// sellerOnboarder adapts the seller service to the auth module's
// signup dependency.
type sellerOnboarder struct{ sellers seller.Service }

func (o sellerOnboarder) Onboard(ctx context.Context, businessName, phone string) (uuid.UUID, error) {
	sl, err := o.sellers.Onboard(ctx, businessName, phone)
	if err != nil {
		return uuid.Nil, err
	}
	return sl.ID, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	db, err := database.Open(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}
	if err := database.Migrate(db, migrationsPath); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal("JWT_SECRET is required")
	}
	requireAuth := auth.Middleware(jwtKey)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity & Profiles ─────────────────────────────────
	sellerRepo := seller.NewPostgresRepository(db)
	sellerService := seller.NewService(sellerRepo)
	seller.NewHandler(sellerService).RegisterRoutes(router, requireAuth)

	accountRepo := auth.NewPostgresRepository(db)
	authService := auth.NewService(accountRepo, sellerOnboarder{sellers: sellerService}, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router, requireAuth)

	// ── Customers ───────────────────────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customer.NewHandler(customerRepo).RegisterRoutes(router, requireAuth)

	// ── SMS Billing & Payments ──────────────────────────────
	billingGateways := billing.GatewayRegistry{
		billing.ProviderSeevCash: billing.NewSeevCashGateway(
			os.Getenv("SEEVCASH_MERCHANT_ID"),
			os.Getenv("SEEVCASH_API_KEY"),
			os.Getenv("SEEVCASH_ENV"),
		),
	}
	billingRepo := billing.NewPostgresRepository(db)
	billingService := billing.NewService(billingRepo, billingGateways)
	billing.NewHandler(billingService).RegisterRoutes(router, requireAuth)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, catalogService, billingService)
	order.NewHandler(orderService).RegisterRoutes(router, requireAuth)

	// ── Public Storefront ───────────────────────────────────
	storefrontService := storefront.NewService(sellerService, catalogService, customerRepo, orderService, billingService)
	storefront.NewHandler(storefrontService).RegisterRoutes(router)

	// ── Admin Panel ─────────────────────────────────────────
	requireAdmin := admin.RequireKey(os.Getenv("ADMIN_API_KEY"))
	adminRepo := admin.NewPostgresRepository(db)
	admin.NewHandler(adminRepo, sellerRepo).RegisterRoutes(router, requireAdmin)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("QwikOrder API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
