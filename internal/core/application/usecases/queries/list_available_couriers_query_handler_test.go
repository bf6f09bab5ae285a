package queries_test

import (
	"context"
	"testing"
	"time"

	"fastdelivery/internal/adapters/out/postgres/courierrepo"
	"fastdelivery/internal/core/application/usecases/queries"
	"fastdelivery/internal/core/domain/model/courier"
	"fastdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ListAvailableCouriersQueryHandlerTestSuite verifies the availability
// filter against a real PostgreSQL instance.
type ListAvailableCouriersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListAvailableCouriersQueryHandler
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&courierrepo.CourierDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListAvailableCouriersQueryHandler(db)
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) saveCourier(name, vehicle string, available bool, createdAt time.Time) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, vehicle, createdAt)
	suite.Require().NoError(err)
	c.SetAvailable(available)

	repo := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	err = repo.Add(context.Background(), c)
	suite.Require().NoError(err)
	return c
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewListAvailableCouriersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) TestHandle_FiltersUnavailableCouriers() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	carlos := suite.saveCourier("Carlos", "bike", true, base)
	suite.saveCourier("Pedro", "moto", false, base.Add(time.Minute))
	ana := suite.saveCourier("Ana", "", true, base.Add(2*time.Minute))

	result, err := suite.handler.Handle(context.Background(), queries.NewListAvailableCouriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(carlos.ID(), result[0].ID)
	suite.Equal("Carlos", result[0].Name)
	suite.Equal("bike", result[0].Vehicle)
	suite.True(result[0].Available)

	suite.Equal(ana.ID(), result[1].ID)
	suite.Equal("moto", result[1].Vehicle)
}

func (suite *ListAvailableCouriersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.ListAvailableCouriersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListAvailableCouriersQuery constructor")
}

func TestListAvailableCouriersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListAvailableCouriersQueryHandlerTestSuite))
}
