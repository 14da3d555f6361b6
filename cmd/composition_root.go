package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/out/http/geoclient"
	"fooddelivery/internal/adapters/out/http/ordersclient"
	"fooddelivery/internal/adapters/out/http/usersclient"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/auth"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	usersClient  *usersclient.Client
	geoClient    *geoclient.Client
	ordersClient *ordersclient.Client
	config       Config
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		usersClient:  usersclient.NewClient(config.UsersServiceURL),
		geoClient:    geoclient.NewClient(config.GeoServiceURL),
		ordersClient: ordersclient.NewClient(config.OrdersServiceURL),
		config:       config,
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVendorCommandHandler() commands.CreateVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVendorCommandHandler(f, c.geoClient, c.config.DefaultDeliveryZoneKm)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.ordersClient, c.logger)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignAnyOrderCommandHandler() commands.AssignAnyOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAnyOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryZoneCommandHandler() commands.UpdateDeliveryZoneCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryZoneCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveRatingCommandHandler() commands.SaveRatingCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryDetailsCommandHandler() commands.UpdateDeliveryDetailsCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateAddVendorCourierCommandHandler() commands.AddVendorCourierCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddVendorCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	// A unit of work that never begins a transaction reads straight from
	// the pool.
	uow := c.uowFactory.Create()
	return queries.NewGetAvailableOrdersQueryHandler(uow.DeliveryRepository(), uow.VendorRepository())
}

func (c *CompositionRoot) CreateGetDeliveryDetailsQueryHandler() queries.GetDeliveryDetailsQueryHandler {
	return queries.NewGetDeliveryDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryZoneQueryHandler() queries.GetDeliveryZoneQueryHandler {
	return queries.NewGetDeliveryZoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRatingQueryHandler() queries.GetRatingQueryHandler {
	return queries.NewGetRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierAnalyticsQueryHandler() queries.GetCourierAnalyticsQueryHandler {
	return queries.NewGetCourierAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePermissionService() auth.PermissionService {
	return auth.NewPermissionService(c.usersClient, c.uowFactory.Create().DeliveryRepository())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.ordersClient, c.config.StatusPushRetrySchedule, c.logger)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
