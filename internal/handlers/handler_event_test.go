package handlers_test

import (
	"bytes"
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

// EventHandlerTestSuite covers the purchase and deposit event routes.
type EventHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testServices
}

func (suite *EventHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *EventHandlerTestSuite) do(method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EventHandlerTestSuite) activeUser(userID string) {
	suite.mocks.Authz.On("Authorize", mock.Anything, userID, domain.ActiveAccount).
		Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()
}

func (suite *EventHandlerTestSuite) TestCreatePurchase_Own() {
	userID := uuid.NewString()
	qty := int64(2)
	body := dto.CreatePurchaseRequest{
		Label:     "double espresso",
		Quantity:  &qty,
		UnitPrice: decimal.RequireFromString("0.80"),
	}
	created := &domain.Purchase{
		PurchaseID: uuid.NewString(),
		UserID:     userID,
		Label:      body.Label,
		Quantity:   2,
		UnitPrice:  body.UnitPrice,
		CreatedAt:  time.Now(),
	}

	suite.activeUser(userID)
	suite.mocks.Purchase.On("CreatePurchase", mock.Anything, userID, mock.MatchedBy(func(r dto.CreatePurchaseRequest) bool {
		return r.Label == body.Label && r.Quantity != nil && *r.Quantity == 2 && r.UnitPrice.Equal(body.UnitPrice)
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/purchases", userID), userID, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PurchaseResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PurchaseID, resp.PurchaseID)
	suite.EqualValues(2, resp.Quantity)
	suite.mocks.Purchase.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestCreatePurchase_NegativePriceRejectedByBinding() {
	userID := uuid.NewString()

	suite.activeUser(userID)

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/purchases", userID), userID,
		map[string]interface{}{"label": "bad", "unitPrice": "-0.10"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.Purchase.AssertNotCalled(suite.T(), "CreatePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestCreatePurchase_OtherUserForbidden() {
	actingID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, actingID, domain.ActiveAccount).
		Return(&domain.User{UserID: actingID, IsActive: true, IsAdmin: false}, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/purchases", targetID), actingID,
		dto.CreatePurchaseRequest{Label: "espresso", UnitPrice: decimal.RequireFromString("0.50")})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mocks.Purchase.AssertNotCalled(suite.T(), "CreatePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestCreatePurchase_AdminForOtherUser() {
	adminID := uuid.NewString()
	targetID := uuid.NewString()
	body := dto.CreatePurchaseRequest{Label: "espresso", UnitPrice: decimal.RequireFromString("0.50")}
	created := &domain.Purchase{
		PurchaseID: uuid.NewString(),
		UserID:     targetID,
		Label:      body.Label,
		Quantity:   1,
		UnitPrice:  body.UnitPrice,
		CreatedAt:  time.Now(),
	}

	suite.mocks.Authz.On("Authorize", mock.Anything, adminID, domain.ActiveAccount).
		Return(&domain.User{UserID: adminID, IsActive: true, IsAdmin: true}, nil).Once()
	suite.mocks.Purchase.On("CreatePurchase", mock.Anything, targetID, mock.AnythingOfType("dto.CreatePurchaseRequest")).
		Return(created, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/purchases", targetID), adminID, body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *EventHandlerTestSuite) TestDeletePurchase_Success() {
	userID := uuid.NewString()
	purchaseID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mocks.Purchase.On("DeletePurchase", mock.Anything, purchaseID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/purchases/"+purchaseID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mocks.Purchase.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestDeletePurchase_NotFound() {
	userID := uuid.NewString()
	purchaseID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mocks.Purchase.On("DeletePurchase", mock.Anything, purchaseID).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/purchases/"+purchaseID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EventHandlerTestSuite) TestCreateDeposit_Own() {
	userID := uuid.NewString()
	body := dto.CreateDepositRequest{
		Label:  "monthly top-up",
		Amount: decimal.RequireFromString("10.00"),
	}
	created := &domain.Deposit{
		DepositID: uuid.NewString(),
		UserID:    userID,
		Label:     body.Label,
		Amount:    body.Amount,
		CreatedAt: time.Now(),
	}

	suite.activeUser(userID)
	suite.mocks.Deposit.On("CreateDeposit", mock.Anything, userID, mock.MatchedBy(func(r dto.CreateDepositRequest) bool {
		return r.Label == body.Label && r.Amount.Equal(body.Amount)
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/deposits", userID), userID, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DepositResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.DepositID, resp.DepositID)
	suite.mocks.Deposit.AssertExpectations(suite.T())
}

// A zero deposit is rejected at binding, before any service call.
func (suite *EventHandlerTestSuite) TestCreateDeposit_ZeroAmountRejectedByBinding() {
	userID := uuid.NewString()

	suite.activeUser(userID)

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/deposits", userID), userID,
		map[string]interface{}{"label": "nothing", "amount": "0"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.Deposit.AssertNotCalled(suite.T(), "CreateDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestCreateDeposit_UnknownAccount() {
	adminID := uuid.NewString()
	targetID := uuid.NewString()
	body := dto.CreateDepositRequest{Label: "top-up", Amount: decimal.RequireFromString("5.00")}

	suite.mocks.Authz.On("Authorize", mock.Anything, adminID, domain.ActiveAccount).
		Return(&domain.User{UserID: adminID, IsActive: true, IsAdmin: true}, nil).Once()
	suite.mocks.Deposit.On("CreateDeposit", mock.Anything, targetID, mock.AnythingOfType("dto.CreateDepositRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/%s/deposits", targetID), adminID, body)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EventHandlerTestSuite) TestDeleteDeposit_Success() {
	userID := uuid.NewString()
	depositID := uuid.NewString()

	suite.mocks.Authz.On("Authorize", mock.Anything, userID).
		Return(&domain.User{UserID: userID}, nil).Once()
	suite.mocks.Deposit.On("DeleteDeposit", mock.Anything, depositID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/deposits/"+depositID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
