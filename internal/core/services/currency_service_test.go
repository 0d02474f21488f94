package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
	"github.com/SscSPs/bitcoin_price_app/internal/core/services"
	"github.com/SscSPs/bitcoin_price_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
	ctx      context.Context
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *CurrencyServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	req := dto.CreateCurrencyRequest{Code: "TWD", Name: "New Taiwan Dollar"}

	suite.mockRepo.On("SaveCurrency", suite.ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "TWD" && c.Name == "New Taiwan Dollar" && !c.CreatedAt.IsZero() && c.CreatedAt.Equal(c.UpdatedAt)
	})).Return(&domain.Currency{ID: 11, Code: "TWD", Name: "New Taiwan Dollar"}, nil).Once()

	currency, err := suite.service.CreateCurrency(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(int64(11), currency.ID)
	suite.Equal("TWD", currency.Code)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_TrimsInput() {
	suite.mockRepo.On("SaveCurrency", suite.ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "TWD" && c.Name == "New Taiwan Dollar"
	})).Return(&domain.Currency{ID: 1, Code: "TWD", Name: "New Taiwan Dollar"}, nil).Once()

	_, err := suite.service.CreateCurrency(suite.ctx, dto.CreateCurrencyRequest{Code: " TWD ", Name: "  New Taiwan Dollar "})

	suite.NoError(err)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ValidationErrors() {
	cases := map[string]dto.CreateCurrencyRequest{
		"lowercase code": {Code: "usd", Name: "US Dollar"},
		"digit in code":  {Code: "US1", Name: "US Dollar"},
		"long code":      {Code: "USDX", Name: "US Dollar"},
		"missing name":   {Code: "USD", Name: ""},
		"blank name":     {Code: "USD", Name: "   "},
		"name too long":  {Code: "USD", Name: "This currency name is far longer than fifty characters"},
		"missing code":   {Code: "", Name: "US Dollar"},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			currency, err := suite.service.CreateCurrency(suite.ctx, req)
			suite.Nil(currency)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	suite.mockRepo.On("SaveCurrency", suite.ctx, mock.AnythingOfType("domain.Currency")).
		Return(nil, apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(suite.ctx, dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar"})

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	suite.mockRepo.On("SaveCurrency", suite.ctx, mock.AnythingOfType("domain.Currency")).
		Return(nil, assert.AnError).Once()

	currency, err := suite.service.CreateCurrency(suite.ctx, dto.CreateCurrencyRequest{Code: "ERR", Name: "Error Currency"})

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_Success() {
	suite.mockRepo.On("UpdateCurrency", suite.ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.ID == 4 && c.Code == "CHF" && c.Name == "Swiss Franc" && !c.UpdatedAt.IsZero()
	})).Return(&domain.Currency{ID: 4, Code: "CHF", Name: "Swiss Franc"}, nil).Once()

	currency, err := suite.service.UpdateCurrency(suite.ctx, 4, dto.UpdateCurrencyRequest{Code: "CHF", Name: "Swiss Franc"})

	suite.Require().NoError(err)
	suite.Equal("Swiss Franc", currency.Name)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_NotFound() {
	suite.mockRepo.On("UpdateCurrency", suite.ctx, mock.AnythingOfType("domain.Currency")).
		Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.UpdateCurrency(suite.ctx, 99, dto.UpdateCurrencyRequest{Code: "CHF", Name: "Swiss Franc"})

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_Invalid() {
	currency, err := suite.service.UpdateCurrency(suite.ctx, 4, dto.UpdateCurrencyRequest{Code: "chf", Name: "Swiss Franc"})

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency() {
	suite.mockRepo.On("DeleteCurrency", suite.ctx, int64(4)).Return(nil).Once()
	suite.mockRepo.On("DeleteCurrency", suite.ctx, int64(5)).Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteCurrency(suite.ctx, 4))
	suite.ErrorIs(suite.service.DeleteCurrency(suite.ctx, 5), apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalizesCode() {
	expected := &domain.Currency{ID: 3, Code: "JPY", Name: "Japanese Yen"}
	suite.mockRepo.On("FindCurrencyByCode", suite.ctx, "JPY").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(suite.ctx, " jpy")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.mockRepo.On("FindCurrencyByCode", suite.ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(suite.ctx, "NTF")

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID() {
	expected := &domain.Currency{ID: 7, Code: "CAD", Name: "Canadian Dollar"}
	suite.mockRepo.On("FindCurrencyByID", suite.ctx, int64(7)).Return(expected, nil).Once()
	suite.mockRepo.On("FindCurrencyByID", suite.ctx, int64(8)).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByID(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(expected, currency)

	_, err = suite.service.GetCurrencyByID(suite.ctx, 8)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	suite.mockRepo.On("ListCurrencies", suite.ctx).Return([]domain.Currency(nil), nil).Once()

	currencies, err := suite.service.ListCurrencies(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Error() {
	suite.mockRepo.On("ListCurrencies", suite.ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(suite.ctx)

	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
}

// --- Run Test Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
