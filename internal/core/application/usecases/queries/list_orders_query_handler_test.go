package queries_test

import (
	"context"
	"testing"
	"time"

	"fastdelivery/internal/adapters/out/postgres/orderrepo"
	"fastdelivery/internal/core/application/usecases/queries"
	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker when seeding
// query tests directly through a repository.
type noopTracker struct{}

func (noopTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

// ListOrdersQueryHandlerTestSuite verifies the order read model against a
// real PostgreSQL instance, including the jsonb item decoding and the
// backlog count.
type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.ListOrdersQueryHandler
	backlogHandler queries.GetOrderBacklogQueryHandler
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.backlogHandler = queries.NewGetOrderBacklogQueryHandler(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) newOrder(customerName string, createdAt time.Time) *order.Order {
	item1, err := order.NewItem(1, "X-Burger", 2, 15.50)
	suite.Require().NoError(err)
	item2, err := order.NewItem(2, "Suco", 1, 7.00)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		customerName,
		[]order.Item{item1, item2},
		createdAt,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *ListOrdersQueryHandlerTestSuite) saveOrder(o *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	err := repo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery(""))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_WithOrders_ReturnsAllOrderedByCreation() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := suite.newOrder("Maria", base)
	second := suite.newOrder("Joao", base.Add(time.Minute))
	suite.saveOrder(first)
	suite.saveOrder(second)

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal("Maria", result[0].CustomerName)
	suite.Equal("PENDING", result[0].Status)
	suite.InDelta(38.00, result[0].Total, 0.001)
	suite.Require().Len(result[0].Items, 2)
	suite.Equal("X-Burger", result[0].Items[0].Name)
	suite.Equal(2, result[0].Items[0].Qty)
	suite.InDelta(15.50, result[0].Items[0].Price, 0.001)
	suite.Nil(result[0].CourierID)
	suite.Nil(result[0].DeliveredAt)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal("Joao", result[1].CustomerName)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_ReturnsOnlyMatching() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pending := suite.newOrder("Maria", base)
	suite.saveOrder(pending)

	courierID := kernel.NewUUID()
	delivered := suite.newOrder("Joao", base.Add(time.Minute))
	err := delivered.Approve(courierID)
	suite.Require().NoError(err)
	delivered.Deliver(base.Add(2 * time.Minute))
	suite.saveOrder(delivered)

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery("PENDING"))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.ID(), result[0].ID)

	result, err = suite.handler.Handle(context.Background(), queries.NewListOrdersQuery("DELIVERED"))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(delivered.ID(), result[0].ID)
	suite.Require().NotNil(result[0].CourierID)
	suite.Equal(courierID, *result[0].CourierID)
	suite.Require().NotNil(result[0].DeliveredAt)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_UnknownStatus_ReturnsEmptySlice() {
	suite.saveOrder(suite.newOrder("Maria", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery("SHIPPED"))

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.ListOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *ListOrdersQueryHandlerTestSuite) TestBacklog_CountsPendingOnly() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.saveOrder(suite.newOrder("Maria", base))
	suite.saveOrder(suite.newOrder("Joao", base.Add(time.Minute)))

	delivered := suite.newOrder("Ana", base.Add(2*time.Minute))
	err := delivered.Approve(kernel.NewUUID())
	suite.Require().NoError(err)
	delivered.Deliver(base.Add(3 * time.Minute))
	suite.saveOrder(delivered)

	count, err := suite.backlogHandler.Handle(context.Background(), queries.NewGetOrderBacklogQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
