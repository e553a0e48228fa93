package router

import (
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/config"
	"github.com/okaique/paiol-dashboard-sub000/internal/handler"
	"github.com/okaique/paiol-dashboard-sub000/internal/middleware"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"
	"github.com/okaique/paiol-dashboard-sub000/internal/service"
	"github.com/okaique/paiol-dashboard-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine plus the
// timeline service the worker pool rebuilds caches with.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, service.TimelineService) {
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
	paiolRepo := repository.NewPaiolRepository(db)
	transicaoRepo := repository.NewTransicaoRepository(db)
	dragagemRepo := repository.NewDragagemRepository(db)
	cubagemRepo := repository.NewCubagemRepository(db)
	retiradaRepo := repository.NewRetiradaRepository(db)
	fechamentoRepo := repository.NewFechamentoRepository(db)
	pagamentoRepo := repository.NewPagamentoRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	pessoaRepo := repository.NewPessoaRepository(db)

	// Worker dispatcher — injected into services that invalidate the timeline
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	paiolSvc := service.NewPaiolService(paiolRepo)
	statusSvc := service.NewStatusService(paiolRepo, transicaoRepo, dragagemRepo, fechamentoRepo, pessoaRepo, dispatcher)
	cubagemSvc := service.NewCubagemService(cubagemRepo, dragagemRepo, dispatcher)
	retiradaSvc := service.NewRetiradaService(retiradaRepo, paiolRepo, dragagemRepo, cubagemRepo, fechamentoRepo, pessoaRepo, dispatcher)
	financeiroSvc := service.NewFinanceiroService(pagamentoRepo, gastoRepo, dragagemRepo, pessoaRepo, dispatcher)
	timelineSvc := service.NewTimelineService(paiolRepo, transicaoRepo, dragagemRepo, cubagemRepo, retiradaRepo, fechamentoRepo, pagamentoRepo, gastoRepo, pessoaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	paiolsH := handler.NewPaiolsHandler(paiolSvc, statusSvc)
	dragagensH := handler.NewDragagensHandler(statusSvc, cubagemSvc)
	retiradasH := handler.NewRetiradasHandler(retiradaSvc)
	financeiroH := handler.NewFinanceiroHandler(financeiroSvc)
	timelineH := handler.NewTimelineHandler(timelineSvc, rdb, cfg.TimelineCacheTTL())

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		paiols := v1.Group("/paiols")
		{
			paiols.POST("", paiolsH.Criar)
			paiols.GET("", paiolsH.Listar)
			paiols.GET("/:id", paiolsH.Obter)
			paiols.PUT("/:id", paiolsH.Atualizar)
			paiols.DELETE("/:id", paiolsH.Desativar)
			paiols.PATCH("/:id/reativar", paiolsH.Reativar)

			paiols.POST("/:id/transicoes", paiolsH.AplicarTransicao)
			paiols.GET("/:id/transicoes", paiolsH.ListarTransicoes)
			paiols.POST("/:id/fechar-ciclo", paiolsH.FecharCiclo)

			paiols.POST("/:id/dragagens", dragagensH.Iniciar)
			paiols.GET("/:id/dragagens", dragagensH.ListarPorPaiol)

			paiols.POST("/:id/retiradas", retiradasH.Registrar)
			paiols.GET("/:id/retiradas", retiradasH.ListarPorPaiol)
			paiols.GET("/:id/volume", retiradasH.StatusVolume)

			paiols.GET("/:id/timeline", timelineH.Obter)
		}

		dragagens := v1.Group("/dragagens")
		{
			dragagens.POST("/:id/finalizar", dragagensH.Finalizar)
			dragagens.POST("/:id/cubagem", dragagensH.RegistrarCubagem)
			dragagens.POST("/:id/pagamentos", financeiroH.RegistrarPagamento)
			dragagens.GET("/:id/pagamentos", financeiroH.ListarPagamentos)
			dragagens.POST("/:id/gastos", financeiroH.RegistrarGasto)
			dragagens.GET("/:id/gastos", financeiroH.ListarGastos)
		}

		v1.PATCH("/cubagens/:id/volume-reduzido", dragagensH.AtualizarVolumeReduzido)
		v1.POST("/cubagens/preview", dragagensH.PreviewVolume)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, timelineSvc
}
