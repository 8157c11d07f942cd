package handlers_test

import (
	"context"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
	"github.com/mroncal/coffee_ledger_app/internal/handlers"
	"github.com/mroncal/coffee_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, providerUserID, email, name, firstName string) (*domain.User, error) {
	args := m.Called(ctx, providerUserID, email, name, firstName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	args := m.Called(ctx, userID, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ComputeBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) TransactionHistory(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock PurchaseService ---
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

var _ portssvc.PurchaseSvcFacade = (*MockPurchaseService)(nil)

// --- Mock DepositService ---
type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) CreateDeposit(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.Deposit, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositService) DeleteDeposit(ctx context.Context, depositID string) error {
	args := m.Called(ctx, depositID)
	return args.Error(0)
}

var _ portssvc.DepositSvcFacade = (*MockDepositService)(nil)

// --- Mock ConfigService ---
type MockConfigService struct {
	mock.Mock
}

func (m *MockConfigService) ListConfigs(ctx context.Context) ([]domain.ConfigEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConfigEntry), args.Error(1)
}

func (m *MockConfigService) SetConfig(ctx context.Context, name, value string) (*domain.ConfigEntry, error) {
	args := m.Called(ctx, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfigEntry), args.Error(1)
}

var _ portssvc.ConfigSvcFacade = (*MockConfigService)(nil)

// --- Mock AuthzService ---
type MockAuthzService struct {
	mock.Mock
}

func (m *MockAuthzService) Authorize(ctx context.Context, userID string, requirements ...domain.AccessRequirement) (*domain.User, error) {
	callArgs := make([]interface{}, 0, len(requirements)+2)
	callArgs = append(callArgs, ctx, userID)
	for _, r := range requirements {
		callArgs = append(callArgs, r)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthzSvcFacade = (*MockAuthzService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Shared test environment ---

// testServices bundles one mock per facade, wired into a router exactly the
// way main wires the real ones.
type testServices struct {
	User        *MockUserService
	Ledger      *MockLedgerService
	Purchase    *MockPurchaseService
	Deposit     *MockDepositService
	Config      *MockConfigService
	Authz       *MockAuthzService
	Token       *MockTokenService
	GoogleOAuth *MockGoogleOAuthService
}

func newTestConfig() *config.Config {
	return &config.Config{
		Port:                       "8080",
		IsProduction:               true, // no swagger routes under test
		JWTSecret:                  testJWTSecret,
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "coffee-ledger-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
		RefreshTokenCookieName:     "rtid",
		RefreshTokenCookiePath:     "/api/v1/auth",
	}
}

// newTestRouter builds a gin engine with fresh mocks and all routes
// registered through the real registration path.
func newTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = dto.RegisterValidations(v)
	}

	mocks := &testServices{
		User:        new(MockUserService),
		Ledger:      new(MockLedgerService),
		Purchase:    new(MockPurchaseService),
		Deposit:     new(MockDepositService),
		Config:      new(MockConfigService),
		Authz:       new(MockAuthzService),
		Token:       new(MockTokenService),
		GoogleOAuth: new(MockGoogleOAuthService),
	}
	container := &portssvc.ServiceContainer{
		User:        mocks.User,
		Ledger:      mocks.Ledger,
		Purchase:    mocks.Purchase,
		Deposit:     mocks.Deposit,
		Config:      mocks.Config,
		Authz:       mocks.Authz,
		Token:       mocks.Token,
		GoogleOAuth: mocks.GoogleOAuth,
	}

	router := gin.New()
	handlers.RegisterRoutes(router, newTestConfig(), container)
	return router, mocks
}

// generateTestToken creates a signed JWT for testing.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "coffee-ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		panic("failed to sign test token: " + err.Error())
	}
	return tsignedString
}
