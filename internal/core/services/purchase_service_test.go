package services_test

import (
	"context"
	"testing"

	"github.com/mroncal/coffee_ledger_app/internal/apperrors"
	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	portssvc "github.com/mroncal/coffee_ledger_app/internal/core/ports/services"
	"github.com/mroncal/coffee_ledger_app/internal/core/services"
	"github.com/mroncal/coffee_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockPurchaseRepo *MockPurchaseRepository
	service          portssvc.PurchaseSvcFacade

	userID string
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockUserRepo)
	suite.userID = uuid.NewString()
}

func (suite *PurchaseServiceTestSuite) expectOwner() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, IsActive: true}, nil).Once()
}

func int64Ptr(v int64) *int64 { return &v }

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Label:     "double espresso",
		Quantity:  int64Ptr(2),
		UnitPrice: decimal.RequireFromString("0.80"),
	}

	suite.expectOwner()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.UserID == suite.userID && p.Quantity == 2 && p.UnitPrice.Equal(req.UnitPrice)
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.NotEmpty(purchase.PurchaseID)
	suite.False(purchase.CreatedAt.IsZero())
	suite.True(purchase.Total().Equal(decimal.RequireFromString("1.60")))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

// An omitted quantity is recorded as one unit.
func (suite *PurchaseServiceTestSuite) TestCreatePurchase_DefaultQuantity() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Label:     "espresso",
		UnitPrice: decimal.RequireFromString("0.50"),
	}

	suite.expectOwner()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.Quantity == 1
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.EqualValues(1, purchase.Quantity)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_FreeItemAllowed() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Label:     "birthday coffee",
		UnitPrice: decimal.Zero,
	}

	suite.expectOwner()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(purchase.Total().IsZero())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NegativePriceRejected() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Label:     "refundish",
		UnitPrice: decimal.RequireFromString("-0.10"),
	}

	suite.expectOwner()

	purchase, err := suite.service.CreatePurchase(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NonPositiveQuantityRejected() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Label:     "nothing",
		Quantity:  int64Ptr(0),
		UnitPrice: decimal.RequireFromString("0.50"),
	}

	suite.expectOwner()

	purchase, err := suite.service.CreatePurchase(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_UnknownOwner() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Label:     "espresso",
		UnitPrice: decimal.RequireFromString("0.50"),
	}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	purchase, err := suite.service.CreatePurchase(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_Success() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockPurchaseRepo.On("DeletePurchase", ctx, purchaseID).Return(nil).Once()

	err := suite.service.DeletePurchase(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_NotFound() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockPurchaseRepo.On("DeletePurchase", ctx, purchaseID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeletePurchase(ctx, purchaseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
