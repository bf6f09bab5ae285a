package storerepo_test

import (
	"context"
	"testing"
	"time"

	"fastdelivery/internal/adapters/out/postgres/storerepo"
	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/store"
	"fastdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// StoreRepositoryIntegrationTestSuite verifies store persistence, in
// particular the case-sensitive unique name constraint.
type StoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *storerepo.GormStoreRepository
	tracker    *MockAggregateTracker
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&storerepo.StoreDTO{}))
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stores").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = storerepo.NewGormStoreRepository(suite.db, suite.tracker)
}

func (suite *StoreRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreRepositoryIntegrationTestSuite) newStore(name string) *store.Store {
	s, err := store.NewStore(kernel.NewUUID(), name, "food", "Rua A, 10", time.Now().UTC())
	suite.Require().NoError(err)
	return s
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_DuplicateName_Conflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("Lanchonete")))

	err := suite.repository.Add(ctx, suite.newStore("Lanchonete"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_CaseDifferentName_Distinct() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("Lanchonete")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("lanchonete")))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGetByName_ExactMatchOnly() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("Lanchonete")))

	found, err := suite.repository.GetByName(ctx, "Lanchonete")
	suite.Require().NoError(err)
	suite.Equal("Lanchonete", found.Name())
	suite.True(found.IsOpen())

	_, err = suite.repository.GetByName(ctx, "LANCHONETE")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate_PersistsClosedStatus() {
	ctx := context.Background()
	s := suite.newStore("Lanchonete")

	suite.Require().NoError(suite.repository.Add(ctx, s))

	s.SetOpen(false)
	suite.Require().NoError(suite.repository.Update(ctx, s))

	found, err := suite.repository.GetByName(ctx, "Lanchonete")
	suite.Require().NoError(err)
	suite.False(found.IsOpen())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestDelete_RemovesStore() {
	ctx := context.Background()
	s := suite.newStore("Lanchonete")

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.Require().NoError(suite.repository.Delete(ctx, s.ID()))

	_, err := suite.repository.GetByName(ctx, "Lanchonete")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestStoreRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryIntegrationTestSuite))
}
