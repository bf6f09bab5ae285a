package cmd

import (
	nethttp "fastdelivery/internal/adapters/in/http"
	"fastdelivery/internal/adapters/out/postgres"
	"fastdelivery/internal/adapters/out/redis/sessionstore"
	"fastdelivery/internal/core/application/usecases/commands"
	"fastdelivery/internal/core/application/usecases/queries"
	"fastdelivery/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Every command handler gets a
// fresh unit of work per invocation through the factory adapters below.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sessions   *sessionstore.RedisSessionStore
}

func NewCompositionRoot(gormDB *gorm.DB, sessions *sessionstore.RedisSessionStore) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   sessions,
	}
}

// SessionStore exposes the redis-backed session store as its port.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

// HTTPHandlers bundles every use case handler the HTTP server needs.
func (c *CompositionRoot) HTTPHandlers() nethttp.Handlers {
	return nethttp.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		ApproveOrder: c.CreateApproveOrderCommandHandler(),
		DeliverOrder: c.CreateDeliverOrderCommandHandler(),
		DeleteOrder:  c.CreateDeleteOrderCommandHandler(),

		CreateStore:    c.CreateCreateStoreCommandHandler(),
		SetStoreStatus: c.CreateSetStoreStatusCommandHandler(),
		DeleteStore:    c.CreateDeleteStoreCommandHandler(),

		CreateCourier:          c.CreateCreateCourierCommandHandler(),
		SetCourierAvailability: c.CreateSetCourierAvailabilityCommandHandler(),
		DeleteCourier:          c.CreateDeleteCourierCommandHandler(),

		ListOrders:            c.CreateListOrdersQueryHandler(),
		ListStores:            c.CreateListStoresQueryHandler(),
		FindStoreByName:       c.CreateFindStoreByNameQueryHandler(),
		ListAvailableCouriers: c.CreateListAvailableCouriersQueryHandler(),
		AuthenticateUser:      c.CreateAuthenticateUserQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateSetStoreStatusCommandHandler() commands.SetStoreStatusCommandHandler {
	return commands.NewSetStoreStatusCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStoreCommandHandler() commands.DeleteStoreCommandHandler {
	return commands.NewDeleteStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateEnsureAdminUserCommandHandler() commands.EnsureAdminUserCommandHandler {
	return commands.NewEnsureAdminUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindStoreByNameQueryHandler() queries.FindStoreByNameQueryHandler {
	return queries.NewFindStoreByNameQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableCouriersQueryHandler() queries.ListAvailableCouriersQueryHandler {
	return queries.NewListAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
