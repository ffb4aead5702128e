package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	appdelivery "github.com/Olpagroup25/insa/internal/application/delivery"
	appidentity "github.com/Olpagroup25/insa/internal/application/identity"
	apppartner "github.com/Olpagroup25/insa/internal/application/partner"
	"github.com/Olpagroup25/insa/internal/domain/delivery"
	"github.com/Olpagroup25/insa/internal/domain/identity"
	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

type carrierFixture struct {
	engine    *gin.Engine
	carriers  *MockCarrierRepository
	partners  *MockPartnerRepository
	published *recordingPublisher
}

func newCarrierFixture(t *testing.T) *carrierFixture {
	t.Helper()
	f := &carrierFixture{
		carriers:  new(MockCarrierRepository),
		partners:  new(MockPartnerRepository),
		published: &recordingPublisher{},
	}
	svc := appdelivery.NewCarrierService(f.carriers, f.partners, zap.NewNop())
	svc.SetEventPublisher(f.published)
	h := NewCarrierHandler(svc)

	f.engine = gin.New()
	g := f.engine.Group("/api/v1/carriers")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.PUT("/:id/pickup-partner", h.AssignPickupPartner)
	g.DELETE("/:id/pickup-partner", h.ClearPickupPartner)

	t.Cleanup(func() {
		f.carriers.AssertExpectations(t)
		f.partners.AssertExpectations(t)
	})
	return f
}

func TestCarrierHandler_Create(t *testing.T) {
	t.Run("pickup point", func(t *testing.T) {
		f := newCarrierFixture(t)
		partnerID := uuid.New()
		f.partners.On("ExistsByID", mock.Anything, partnerID).Return(true, nil)
		f.carriers.On("Save", mock.Anything, mock.AnythingOfType("*delivery.Carrier")).Return(nil)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/carriers", appdelivery.CreateCarrierRequest{
			Name:            "Retiro en Punto Centro",
			PickupPartnerID: &partnerID,
			PickupHours:     "Lun a Vie 9 a 18",
		}, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[appdelivery.CarrierResponse](t, w)
		assert.True(t, resp.Data.IsPickupPoint)
		require.NotNil(t, resp.Data.PickupPartnerID)
		assert.Equal(t, partnerID, *resp.Data.PickupPartnerID)
		assert.Empty(t, f.published.events)
	})

	t.Run("unknown pickup partner", func(t *testing.T) {
		f := newCarrierFixture(t)
		partnerID := uuid.New()
		f.partners.On("ExistsByID", mock.Anything, partnerID).Return(false, nil)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/carriers", appdelivery.CreateCarrierRequest{
			Name:            "Retiro",
			PickupPartnerID: &partnerID,
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PARTNER", decode[any](t, w).Error.Code)
		f.carriers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing name", func(t *testing.T) {
		f := newCarrierFixture(t)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/carriers", map[string]any{}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCarrierHandler_GetByID(t *testing.T) {
	f := newCarrierFixture(t)
	missing := uuid.New()
	f.carriers.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

	w := doJSON(f.engine, http.MethodGet, "/api/v1/carriers/"+missing.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decode[any](t, w).Error.Code)

	w = doJSON(f.engine, http.MethodGet, "/api/v1/carriers/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCarrierHandler_List(t *testing.T) {
	f := newCarrierFixture(t)
	carrier, err := delivery.NewCarrier("Correo")
	require.NoError(t, err)
	pickupOnly := mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Filters["is_pickup_point"] == true && filter.Page == 2 && filter.PageSize == 5
	})
	f.carriers.On("FindAll", mock.Anything, pickupOnly).Return([]delivery.Carrier{*carrier}, nil)
	f.carriers.On("Count", mock.Anything, pickupOnly).Return(int64(6), nil)

	w := doJSON(f.engine, http.MethodGet, "/api/v1/carriers?pickup_only=true&page=2&page_size=5", nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[[]appdelivery.CarrierResponse](t, w)
	require.Len(t, resp.Data, 1)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(6), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestCarrierHandler_PickupPartner(t *testing.T) {
	t.Run("assign publishes the change", func(t *testing.T) {
		f := newCarrierFixture(t)
		carrier, err := delivery.NewCarrier("Correo")
		require.NoError(t, err)
		partnerID := uuid.New()
		f.partners.On("ExistsByID", mock.Anything, partnerID).Return(true, nil)
		f.carriers.On("FindByID", mock.Anything, carrier.ID).Return(carrier, nil)
		f.carriers.On("Save", mock.Anything, carrier).Return(nil)

		w := doJSON(f.engine, http.MethodPut, "/api/v1/carriers/"+carrier.ID.String()+"/pickup-partner",
			appdelivery.AssignPickupPartnerRequest{PartnerID: partnerID}, "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, decode[appdelivery.CarrierResponse](t, w).Data.IsPickupPoint)
		require.Len(t, f.published.events, 1)
		changed, ok := f.published.events[0].(*delivery.CarrierPickupPartnerChangedEvent)
		require.True(t, ok)
		assert.Equal(t, carrier.ID, changed.CarrierID)
		assert.Nil(t, changed.PreviousPartnerID)
		assert.Empty(t, carrier.GetDomainEvents())
	})

	t.Run("clear", func(t *testing.T) {
		f := newCarrierFixture(t)
		carrier, err := delivery.NewCarrier("Retiro")
		require.NoError(t, err)
		require.NoError(t, carrier.AssignPickupPartner(uuid.New()))
		carrier.ClearDomainEvents()
		f.carriers.On("FindByID", mock.Anything, carrier.ID).Return(carrier, nil)
		f.carriers.On("Save", mock.Anything, carrier).Return(nil)

		w := doJSON(f.engine, http.MethodDelete, "/api/v1/carriers/"+carrier.ID.String()+"/pickup-partner", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[appdelivery.CarrierResponse](t, w).Data.IsPickupPoint)
		require.Len(t, f.published.events, 1)
	})

	t.Run("nil partner id", func(t *testing.T) {
		f := newCarrierFixture(t)

		w := doJSON(f.engine, http.MethodPut, "/api/v1/carriers/"+uuid.NewString()+"/pickup-partner",
			map[string]any{}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func newPartnerEngine(t *testing.T) (*gin.Engine, *MockPartnerRepository) {
	t.Helper()
	partners := new(MockPartnerRepository)
	h := NewPartnerHandler(apppartner.NewPartnerService(partners, zap.NewNop()))

	engine := gin.New()
	g := engine.Group("/api/v1/partners")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)

	t.Cleanup(func() { partners.AssertExpectations(t) })
	return engine, partners
}

func TestPartnerHandler_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		engine, partners := newPartnerEngine(t)
		partners.On("Save", mock.Anything, mock.AnythingOfType("*partner.Partner")).Return(nil)

		w := doJSON(engine, http.MethodPost, "/api/v1/partners", apppartner.CreatePartnerRequest{
			Name:    "Punto Centro",
			Address: apppartner.AddressInput{Street: "Av. Corrientes 1234", City: "CABA"},
			Mobile:  "11 5555-0000",
			Email:   "Centro@Example.com",
		}, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[apppartner.PartnerResponse](t, w)
		assert.Equal(t, "Punto Centro", resp.Data.Name)
		assert.Equal(t, "CABA", resp.Data.City)
		assert.Equal(t, "centro@example.com", resp.Data.Email)
	})

	t.Run("bad phone is rejected by the domain", func(t *testing.T) {
		engine, _ := newPartnerEngine(t)

		w := doJSON(engine, http.MethodPost, "/api/v1/partners", apppartner.CreatePartnerRequest{
			Name:  "Punto Centro",
			Phone: "call me",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PHONE", decode[any](t, w).Error.Code)
	})

	t.Run("latitude out of range fails binding", func(t *testing.T) {
		engine, _ := newPartnerEngine(t)

		w := doJSON(engine, http.MethodPost, "/api/v1/partners",
			map[string]any{"name": "Punto Centro", "latitude": 120}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPartnerHandler_Update(t *testing.T) {
	engine, partners := newPartnerEngine(t)
	p, err := partner.NewPartner("Punto Centro")
	require.NoError(t, err)
	require.NoError(t, p.SetContact("4444-0000", "", ""))
	partners.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	partners.On("Save", mock.Anything, p).Return(nil)

	name := "Punto Centro Sur"
	mobile := "11 5555-0000"
	w := doJSON(engine, http.MethodPut, "/api/v1/partners/"+p.ID.String(),
		apppartner.UpdatePartnerRequest{Name: &name, Mobile: &mobile}, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[apppartner.PartnerResponse](t, w)
	assert.Equal(t, "Punto Centro Sur", resp.Data.Name)
	assert.Equal(t, "4444-0000", resp.Data.Phone)
	assert.Equal(t, "11 5555-0000", resp.Data.Mobile)
}

func TestPartnerHandler_GetByID_NotFound(t *testing.T) {
	engine, partners := newPartnerEngine(t)
	id := uuid.New()
	partners.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	w := doJSON(engine, http.MethodGet, "/api/v1/partners/"+id.String(), nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_ListByPartner(t *testing.T) {
	users := new(MockUserRepository)
	h := NewUserHandler(appidentity.NewUserService(users, new(MockPartnerRepository), nil, time.Hour, zap.NewNop()))
	engine := gin.New()
	engine.GET("/api/v1/users", h.ListByPartner)

	partnerID := uuid.New()
	u, err := identity.NewUser("punto.centro", "secreto123", partnerID, identity.UserKindPortal)
	require.NoError(t, err)
	users.On("FindByPartnerID", mock.Anything, partnerID).Return([]identity.User{*u}, nil)

	w := doJSON(engine, http.MethodGet, "/api/v1/users?partner_id="+partnerID.String(), nil, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[[]appidentity.UserInfo](t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "punto.centro", resp.Data[0].Username)
	assert.Equal(t, partnerID, resp.Data[0].PartnerID)
	users.AssertExpectations(t)

	w = doJSON(engine, http.MethodGet, "/api/v1/users?partner_id=nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
