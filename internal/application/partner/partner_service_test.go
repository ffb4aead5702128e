package partner

import (
	"context"
	"testing"

	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Partner, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Partner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestPartnerService_Create(t *testing.T) {
	repo := new(MockPartnerRepository)
	svc := NewPartnerService(repo, zap.NewNop())
	repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Partner")).Return(nil)

	result, err := svc.Create(context.Background(), CreatePartnerRequest{
		Name:      "  Kiosco San Martín ",
		Address:   AddressInput{Street: "Av. San Martín 1234", City: "Ezeiza", CountryName: "Argentina"},
		Mobile:    "+54 11 5555-0000",
		Email:     "Kiosco@Example.com",
		Latitude:  -34.85,
		Longitude: -58.52,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kiosco San Martín", result.Name)
	assert.Equal(t, "kiosco@example.com", result.Email)
	assert.Equal(t, "Argentina", result.CountryName)
	assert.True(t, result.Active)
	repo.AssertExpectations(t)
}

func TestPartnerService_Create_InvalidContact(t *testing.T) {
	repo := new(MockPartnerRepository)
	svc := NewPartnerService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), CreatePartnerRequest{Name: "Kiosco", Phone: "call me"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PHONE", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPartnerService_Update_KeepsUnsetFields(t *testing.T) {
	repo := new(MockPartnerRepository)
	svc := NewPartnerService(repo, zap.NewNop())
	p, err := partner.NewPartner("Kiosco")
	require.NoError(t, err)
	require.NoError(t, p.SetContact("4444-1111", "15-5555-0000", "a@example.com"))
	require.NoError(t, p.SetCoordinates(-34.6, -58.4))

	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)

	email, lat := "b@example.com", -35.0
	result, err := svc.Update(context.Background(), p.ID, UpdatePartnerRequest{Email: &email, Latitude: &lat})
	require.NoError(t, err)
	assert.Equal(t, "4444-1111", result.Phone)
	assert.Equal(t, "15-5555-0000", result.Mobile)
	assert.Equal(t, "b@example.com", result.Email)
	assert.InDelta(t, -35.0, result.Latitude, 1e-9)
	assert.InDelta(t, -58.4, result.Longitude, 1e-9)
}

func TestPartnerService_List(t *testing.T) {
	repo := new(MockPartnerRepository)
	svc := NewPartnerService(repo, zap.NewNop())
	p, err := partner.NewPartner("Kiosco")
	require.NoError(t, err)

	byCity := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["city"] == "Ezeiza" && f.Search == "kio" && f.Page == 2
	})
	repo.On("FindAll", mock.Anything, byCity).Return([]partner.Partner{*p}, nil)
	repo.On("Count", mock.Anything, byCity).Return(int64(21), nil)

	items, total, err := svc.List(context.Background(), PartnerListFilter{Search: "kio", City: "Ezeiza", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Kiosco", items[0].Name)
}

func TestPartnerService_GetByID_NotFound(t *testing.T) {
	repo := new(MockPartnerRepository)
	svc := NewPartnerService(repo, zap.NewNop())
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.True(t, shared.IsNotFound(err))
}
