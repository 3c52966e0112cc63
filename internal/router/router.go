package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/config"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/handler"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/middleware"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/service"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	planillaRepo := repository.NewPlanillaStockRepository(db)
	cierreRepo := repository.NewCierreCajaRepository(db)
	alertaRepo := repository.NewAlertaCruceRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	encargadoRepo := repository.NewEncargadoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	planillaSvc := service.NewPlanillaService(planillaRepo, productoRepo, encargadoRepo)
	cruceSvc := service.NewCruceService(planillaRepo, cierreRepo, alertaRepo, cfg.Umbral(), dispatcher)
	cierreSvc := service.NewCierreCajaService(cierreRepo)
	catalogoSvc := service.NewCatalogoService(productoRepo, encargadoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	planillasH := handler.NewPlanillasHandler(planillaSvc)
	crucesH := handler.NewCrucesHandler(cruceSvc)
	cierresH := handler.NewCierresHandler(cierreSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		planillas := v1.Group("/planillas")
		{
			planillas.POST("", planillasH.Guardar)
			planillas.GET("", planillasH.Listar)
			planillas.GET("/slot", planillasH.ObtenerPorSlot)
			planillas.GET("/:id", planillasH.Obtener)
			planillas.POST("/:id/bloquear", planillasH.BloquearCampo)
			planillas.POST("/:id/ingresos", planillasH.AgregarIngreso)
			planillas.POST("/:id/finalizar", planillasH.Finalizar)
			planillas.POST("/:id/cruce", crucesH.Comparar)
		}

		alertas := v1.Group("/alertas")
		{
			alertas.GET("", crucesH.ListarAlertas)
			alertas.POST("/:id/resolver", crucesH.ResolverAlerta)
			alertas.POST("/:id/descartar", crucesH.DescartarAlerta)
		}

		cierres := v1.Group("/cierres-caja")
		{
			cierres.POST("", cierresH.Registrar)
			cierres.GET("/slot", cierresH.ObtenerPorSlot)
		}

		v1.GET("/productos", catalogoH.ListarProductos)
		v1.GET("/locales/:id/encargados", catalogoH.ListarEncargados)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
