package commands_test

import (
	"context"
	"testing"
	"time"

	"fastdelivery/internal/core/application/usecases/commands"
	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/store"
	"fastdelivery/internal/core/ports"
	"fastdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByName(ctx context.Context, name string) (*store.Store, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStoreUoW struct{ mock.Mock }

func (m *MockStoreUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockStoreUoWFactory struct{ mock.Mock }

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

func TestCreateStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), "Lanchonete", "food", "Rua A, 10")
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*store.Store")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Lanchonete", created.Name())
	assert.True(t, created.IsOpen())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateStoreCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), "Lanchonete", "food", "")
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*store.Store")).
			Return(errs.NewObjectAlreadyExistsError("name", "Lanchonete")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestNewCreateStoreCommand_AccumulatesAllViolations(t *testing.T) {
	_, err := commands.NewCreateStoreCommand(kernel.NewUUID(), " ", "", "addr")
	require.Error(t, err)
	assert.Len(t, errs.Messages(err), 2)
}

func TestSetStoreStatusCommandHandler_Handle_ClosesStore(t *testing.T) {
	ctx := t.Context()
	existing, err := store.NewStore(kernel.NewUUID(), "Lanchonete", "food", "", mockNow())
	require.NoError(t, err)

	cmd, err := commands.NewSetStoreStatusCommand("Lanchonete", false)
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(repo).Twice()
	repo.On("GetByName", mock.Anything, "Lanchonete").Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetStoreStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, updated.IsOpen())
	repo.AssertExpectations(t)
}

func TestSetStoreStatusCommandHandler_Handle_StoreNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetStoreStatusCommand("Nowhere", true)
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(repo).Once()
	repo.On("GetByName", mock.Anything, "Nowhere").
		Return(nil, errs.NewObjectNotFoundError("name", "Nowhere")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetStoreStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd, err := commands.NewDeleteStoreCommand(storeID)
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, storeID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteStoreCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}
