package pricing

import (
	"context"
	"testing"
	"time"

	"studiobooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFormulaSource struct {
	mock.Mock
}

func (m *MockFormulaSource) GetByID(ctx context.Context, id int64) (*domain.Formula, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Formula), args.Error(1)
}

type MockPackSource struct {
	mock.Mock
}

func (m *MockPackSource) GetActiveForUser(ctx context.Context, userID int64) (*domain.HourPack, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HourPack), args.Error(1)
}

type MockPromoSource struct {
	mock.Mock
}

func (m *MockPromoSource) Create(ctx context.Context, p *domain.PromoCode) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 55
	}
	return args.Error(0)
}

func (m *MockPromoSource) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}

func (m *MockPromoSource) MarkUsed(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSettingsSource struct {
	mock.Mock
}

func (m *MockSettingsSource) Get(ctx context.Context) (*domain.StudioSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudioSettings), args.Error(1)
}

func newTestService(formulas *MockFormulaSource, packs *MockPackSource, promos *MockPromoSource, settings *MockSettingsSource) *Service {
	svc := NewService(formulas, packs, promos, settings)
	svc.now = func() time.Time { return wednesday(8, 0) }
	return svc
}

func TestService_Quote_HourlyFormula(t *testing.T) {
	mockFormulas := new(MockFormulaSource)
	mockSettings := new(MockSettingsSource)

	mockFormulas.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Formula{ID: 1, Kind: domain.FormulaHourly, PriceHour: 50, IsActive: true}, nil)
	mockSettings.On("Get", mock.Anything).Return(domain.DefaultStudioSettings(), nil)

	service := newTestService(mockFormulas, new(MockPackSource), new(MockPromoSource), mockSettings)

	result, err := service.Quote(context.Background(), QuoteParams{
		Interval:  domain.TimeInterval{Start: wednesday(10, 0), End: wednesday(12, 0)},
		FormulaID: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, result.Breakdown.PriceTTC)
	assert.Nil(t, result.Promo)
	assert.Nil(t, result.Pack)
}

func TestService_Quote_UnknownFormula(t *testing.T) {
	mockFormulas := new(MockFormulaSource)
	mockFormulas.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockFormulas, new(MockPackSource), new(MockPromoSource), new(MockSettingsSource))

	_, err := service.Quote(context.Background(), QuoteParams{
		Interval:  domain.TimeInterval{Start: wednesday(10, 0), End: wednesday(12, 0)},
		FormulaID: 404,
	})

	assert.ErrorIs(t, err, ErrFormulaNotFound)
}

func TestService_Quote_PacksLookedUpForKnownUser(t *testing.T) {
	mockFormulas := new(MockFormulaSource)
	mockPacks := new(MockPackSource)
	mockSettings := new(MockSettingsSource)

	mockFormulas.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Formula{ID: 1, Kind: domain.FormulaHourly, PriceHour: 50, IsActive: true}, nil)
	mockPacks.On("GetActiveForUser", mock.Anything, int64(42)).
		Return(&domain.HourPack{ID: 3, UserID: 42, PriceTTC: 350, HoursQuota: 10, IsActive: true}, nil)
	mockSettings.On("Get", mock.Anything).Return(domain.DefaultStudioSettings(), nil)

	service := newTestService(mockFormulas, mockPacks, new(MockPromoSource), mockSettings)

	result, err := service.Quote(context.Background(), QuoteParams{
		Interval:  domain.TimeInterval{Start: wednesday(10, 0), End: wednesday(12, 0)},
		FormulaID: 1,
		UserID:    42,
	})

	assert.NoError(t, err)
	assert.Equal(t, RatePack, result.Breakdown.RateKind)
	assert.NotNil(t, result.Pack)
	assert.Equal(t, 70.0, result.Breakdown.PriceTTC)
}

func TestService_Quote_AnonymousSkipsPackLookup(t *testing.T) {
	mockFormulas := new(MockFormulaSource)
	mockPacks := new(MockPackSource)
	mockSettings := new(MockSettingsSource)

	mockFormulas.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Formula{ID: 1, Kind: domain.FormulaHourly, PriceHour: 50, IsActive: true}, nil)
	mockSettings.On("Get", mock.Anything).Return(domain.DefaultStudioSettings(), nil)

	service := newTestService(mockFormulas, mockPacks, new(MockPromoSource), mockSettings)

	_, err := service.Quote(context.Background(), QuoteParams{
		Interval:  domain.TimeInterval{Start: wednesday(10, 0), End: wednesday(12, 0)},
		FormulaID: 1,
	})

	assert.NoError(t, err)
	mockPacks.AssertNotCalled(t, "GetActiveForUser", mock.Anything, mock.Anything)
}

func TestService_ValidatePromo_Success(t *testing.T) {
	mockPromos := new(MockPromoSource)
	mockPromos.On("GetByCode", mock.Anything, "WELCOME10").
		Return(&domain.PromoCode{ID: 5, Code: "WELCOME10", DiscountPercent: 10}, nil)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	promo, err := service.ValidatePromo(context.Background(), "WELCOME10", "anyone@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 10.0, promo.DiscountPercent)
}

func TestService_ValidatePromo_UnknownCode(t *testing.T) {
	mockPromos := new(MockPromoSource)
	mockPromos.On("GetByCode", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	_, err := service.ValidatePromo(context.Background(), "NOPE", "")

	assert.ErrorIs(t, err, ErrPromoInvalid)
}

func TestService_ValidatePromo_AlreadyUsed(t *testing.T) {
	mockPromos := new(MockPromoSource)
	mockPromos.On("GetByCode", mock.Anything, "BURNED").
		Return(&domain.PromoCode{ID: 5, Code: "BURNED", DiscountPercent: 10, Used: true}, nil)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	_, err := service.ValidatePromo(context.Background(), "BURNED", "")

	assert.ErrorIs(t, err, ErrPromoInvalid)
}

func TestService_ValidatePromo_WrongEmailScope(t *testing.T) {
	mockPromos := new(MockPromoSource)
	mockPromos.On("GetByCode", mock.Anything, "SCOPED").
		Return(&domain.PromoCode{ID: 5, Code: "SCOPED", DiscountPercent: 10, Email: "vip@example.com"}, nil)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	_, err := service.ValidatePromo(context.Background(), "SCOPED", "other@example.com")
	assert.ErrorIs(t, err, ErrPromoInvalid)

	// Scope match is case-insensitive.
	promo, err := service.ValidatePromo(context.Background(), "SCOPED", "VIP@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "SCOPED", promo.Code)
}

func TestService_ValidatePromo_Expired(t *testing.T) {
	expiry := wednesday(7, 0) // before the service clock
	mockPromos := new(MockPromoSource)
	mockPromos.On("GetByCode", mock.Anything, "OLD").
		Return(&domain.PromoCode{ID: 5, Code: "OLD", DiscountPercent: 10, ExpiresAt: &expiry}, nil)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	_, err := service.ValidatePromo(context.Background(), "OLD", "")

	assert.ErrorIs(t, err, ErrPromoExpired)
}

func TestService_RedeemPromo_LostRace(t *testing.T) {
	mockPromos := new(MockPromoSource)
	mockPromos.On("MarkUsed", mock.Anything, int64(5)).Return(false, nil)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	err := service.RedeemPromo(context.Background(), 5)

	assert.ErrorIs(t, err, ErrPromoInvalid)
}

func TestService_CreatePromo_GeneratesCode(t *testing.T) {
	mockPromos := new(MockPromoSource)
	mockPromos.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(new(MockFormulaSource), new(MockPackSource), mockPromos, new(MockSettingsSource))

	promo, err := service.CreatePromo(context.Background(), CreatePromoRequest{
		DiscountPercent: 15,
		Email:           "VIP@Example.com",
	})

	assert.NoError(t, err)
	assert.True(t, len(promo.Code) > len("PROMO-"))
	assert.Equal(t, "vip@example.com", promo.Email)
	mockPromos.AssertExpectations(t)
}
