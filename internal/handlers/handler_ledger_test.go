package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testServices
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *LedgerHandlerTestSuite) doGet(path, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) TestGetBalance_Own() {
	userID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
	suite.mocks.Ledger.On("ComputeBalance", mock.Anything, userID).
		Return(decimal.RequireFromString("2.50"), nil).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/balance", userID), userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("2.50")))
	suite.mocks.Ledger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetBalance_OtherUserForbidden() {
	actingID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, actingID, domain.ActiveAccount).
		Return(&domain.User{UserID: actingID, IsActive: true, IsAdmin: false}, nil).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/balance", targetID), actingID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mocks.Ledger.AssertNotCalled(suite.T(), "ComputeBalance", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetBalance_AdminCanReadAnyAccount() {
	actingID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, actingID, domain.ActiveAccount).
		Return(&domain.User{UserID: actingID, IsActive: true, IsAdmin: true}, nil).Once()
	suite.mocks.Ledger.On("ComputeBalance", mock.Anything, targetID).
		Return(decimal.RequireFromString("-1.20"), nil).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/balance", targetID), actingID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.IsNegative())
}

func (suite *LedgerHandlerTestSuite) TestGetBalance_DisabledAccountBlocked() {
	userID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(nil, apperrors.ErrAccountDisabled).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/balance", userID), userID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "disabled")
}

func (suite *LedgerHandlerTestSuite) TestGetBalance_MissingToken() {
	userID := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%s/balance", userID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetBalance_UnknownAccount() {
	userID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(&domain.User{UserID: userID, IsActive: true, IsAdmin: true}, nil).Once()
	suite.mocks.Ledger.On("ComputeBalance", mock.Anything, userID).
		Return(decimal.Decimal{}, apperrors.ErrNotFound).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/balance", userID), userID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetTransactions_MergedHistory() {
	userID := uuid.NewString()
	now := time.Now()
	qty := int64(2)
	price := decimal.RequireFromString("0.50")

	history := []domain.Transaction{
		{
			Kind:          domain.TransactionPurchase,
			TransactionID: uuid.NewString(),
			Label:         "espresso",
			Amount:        decimal.RequireFromString("1.00"),
			Quantity:      &qty,
			UnitPrice:     &price,
			CreatedAt:     now,
		},
		{
			Kind:          domain.TransactionDeposit,
			TransactionID: uuid.NewString(),
			Label:         "top-up",
			Amount:        decimal.RequireFromString("10.00"),
			CreatedAt:     now.Add(-time.Hour),
		},
	}

	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
	suite.mocks.Ledger.On("TransactionHistory", mock.Anything, userID).Return(history, nil).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/transactions", userID), userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionHistoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Message)
	suite.Require().Len(resp.Transactions, 2)
	suite.Equal(history[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.Equal(domain.TransactionPurchase, resp.Transactions[0].Kind)
	suite.Require().NotNil(resp.Transactions[0].Quantity)
	suite.EqualValues(2, *resp.Transactions[0].Quantity)
	suite.Equal(domain.TransactionDeposit, resp.Transactions[1].Kind)
	suite.Nil(resp.Transactions[1].Quantity)
}

// An account with no events gets 200 with the explicit empty-state marker,
// not an error and not a bare empty list.
func (suite *LedgerHandlerTestSuite) TestGetTransactions_NoTransactionsYet() {
	userID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
	suite.mocks.Ledger.On("TransactionHistory", mock.Anything, userID).
		Return(nil, apperrors.ErrNoTransactions).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/transactions", userID), userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionHistoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("no transactions yet", resp.Message)
	suite.Empty(resp.Transactions)
}

func (suite *LedgerHandlerTestSuite) TestGetTransactions_UnknownAccount() {
	userID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
	suite.mocks.Ledger.On("TransactionHistory", mock.Anything, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doGet(fmt.Sprintf("/api/v1/users/%s/transactions", userID), userID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
