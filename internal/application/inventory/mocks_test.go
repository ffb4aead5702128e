package inventory

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPickingRepository is a mock implementation of PickingRepository
type MockPickingRepository struct {
	mock.Mock
}

func (m *MockPickingRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Picking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Picking), args.Error(1)
}

func (m *MockPickingRepository) FindByName(ctx context.Context, name string) (*inventory.Picking, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Picking), args.Error(1)
}

func (m *MockPickingRepository) FindForPickupPartner(ctx context.Context, query inventory.PickupQuery) ([]inventory.Picking, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Picking), args.Error(1)
}

func (m *MockPickingRepository) CountForPickupPartner(ctx context.Context, query inventory.PickupQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPickingRepository) Save(ctx context.Context, picking *inventory.Picking) error {
	return m.Called(ctx, picking).Error(0)
}

func (m *MockPickingRepository) SavePickupConfirmation(ctx context.Context, picking *inventory.Picking) (bool, error) {
	args := m.Called(ctx, picking)
	return args.Bool(0), args.Error(1)
}

func (m *MockPickingRepository) SyncPickupPartner(ctx context.Context, carrierID uuid.UUID, pickupPartnerID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, carrierID, pickupPartnerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
