package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/ws"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/actorrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/jobs"
	"storefront/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	controller *lifecycle.Controller
	tokens     *auth.Tokens
	hub        *ws.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	var opts []access.Option
	if cfg.PolicyDeliverySelfAdvance {
		opts = append(opts, access.WithDeliverySelfAdvance())
	}

	controller, err := lifecycle.NewController(access.NewPolicy(opts...))
	if err != nil {
		return CompositionRoot{}, err
	}

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		controller: controller,
		tokens:     tokens,
		hub:        ws.NewHub(logger),
		logger:     logger,
	}, nil
}

// Hub is the branch event hub; its Run loop is owned by the caller.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) Tokens() *auth.Tokens {
	return c.tokens
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) actorUoW() commands.ActorUoWFactory {
	return FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.controller, c.hub)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.uow(), c.controller, c.hub)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.uow(), c.controller, c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.controller, c.hub)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow(), c.controller, c.hub)
}

func (c *CompositionRoot) CreateCreateActorCommandHandler() commands.CreateActorCommandHandler {
	return commands.NewCreateActorCommandHandler(c.actorUoW(), c.controller)
}

func (c *CompositionRoot) CreateDeleteActorCommandHandler() commands.DeleteActorCommandHandler {
	return commands.NewDeleteActorCommandHandler(c.actorUoW(), c.controller)
}

func (c *CompositionRoot) CreateUpdateActorCommandHandler() commands.UpdateActorCommandHandler {
	return commands.NewUpdateActorCommandHandler(c.actorUoW(), c.controller)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.controller)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.controller)
}

func (c *CompositionRoot) CreateGetBranchSummaryQueryHandler() queries.GetBranchSummaryQueryHandler {
	return queries.NewGetBranchSummaryQueryHandler(c.gormDB, c.controller)
}

func (c *CompositionRoot) CreateGetActorQueryHandler() queries.GetActorQueryHandler {
	return queries.NewGetActorQueryHandler(c.gormDB, c.controller)
}

func (c *CompositionRoot) CreateListActorsQueryHandler() queries.ListActorsQueryHandler {
	return queries.NewListActorsQueryHandler(c.gormDB, c.controller)
}

func (c *CompositionRoot) CreateListBranchSummariesQueryHandler() queries.ListBranchSummariesQueryHandler {
	return queries.NewListBranchSummariesQueryHandler(c.gormDB)
}

// CreateRouter wires every handler into the HTTP and WebSocket routes.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:     c.CreateAdvanceOrderCommandHandler(),
		AssignDelivery:   c.CreateAssignDeliveryCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		DeleteOrder:      c.CreateDeleteOrderCommandHandler(),
		CreateActor:      c.CreateCreateActorCommandHandler(),
		DeleteActor:      c.CreateDeleteActorCommandHandler(),
		UpdateActor:      c.CreateUpdateActorCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		GetBranchSummary: c.CreateGetBranchSummaryQueryHandler(),
		GetActor:         c.CreateGetActorQueryHandler(),
		ListActors:       c.CreateListActorsQueryHandler(),
	})

	streamer := ws.NewHandler(c.hub, c.tokens, actorrepo.NewGormActorRepository(c.gormDB), c.controller, c.logger)

	return httpin.NewRouter(httpin.RouterConfig{
		Server:      server,
		Streamer:    streamer,
		Tokens:      c.tokens,
		Logger:      c.logger,
		CORSOrigins: c.cfg.CORSOrigins,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewBranchReportJob(c.CreateListBranchSummariesQueryHandler(), c.hub, c.cfg.ReportSchedule, c.logger),
	)
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
