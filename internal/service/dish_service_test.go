package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Abhinav-36/Convertcart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDishRepository is a mock implementation of DishRepository.
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) SearchDishes(ctx context.Context, query model.SearchQuery) ([]model.DishResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DishResult), args.Error(1)
}

func (m *MockDishRepository) CountRestaurants(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestDishService_Search_Validation(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name      string
		dishName  string
		minPrice  string
		maxPrice  string
		expectErr *model.DomainError
	}{
		{
			name:      "blank name",
			dishName:  "   ",
			minPrice:  "100",
			maxPrice:  "300",
			expectErr: model.ErrMissingParameters,
		},
		{
			name:      "min price not a number",
			dishName:  "biryani",
			minPrice:  "abc",
			maxPrice:  "300",
			expectErr: model.ErrPriceNotNumber,
		},
		{
			name:      "max price not a number",
			dishName:  "biryani",
			minPrice:  "100",
			maxPrice:  "",
			expectErr: model.ErrPriceNotNumber,
		},
		{
			name:      "NaN is rejected",
			dishName:  "biryani",
			minPrice:  "NaN",
			maxPrice:  "300",
			expectErr: model.ErrPriceNotNumber,
		},
		{
			name:      "infinity is rejected",
			dishName:  "biryani",
			minPrice:  "100",
			maxPrice:  "Inf",
			expectErr: model.ErrPriceNotNumber,
		},
		{
			name:      "negative min price",
			dishName:  "biryani",
			minPrice:  "-1",
			maxPrice:  "300",
			expectErr: model.ErrPriceNegative,
		},
		{
			name:      "negative max price",
			dishName:  "biryani",
			minPrice:  "0",
			maxPrice:  "-50",
			expectErr: model.ErrPriceNegative,
		},
		{
			name:      "min exceeds max",
			dishName:  "biryani",
			minPrice:  "200",
			maxPrice:  "100",
			expectErr: model.ErrPriceMinExceedsMax,
		},
		{
			name:      "blank name wins over bad price",
			dishName:  "",
			minPrice:  "abc",
			maxPrice:  "-1",
			expectErr: model.ErrMissingParameters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDishRepository)
			svc := NewDishService(mockRepo, logger)

			results, err := svc.Search(context.Background(), tt.dishName, tt.minPrice, tt.maxPrice)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Nil(t, results)
			mockRepo.AssertNotCalled(t, "SearchDishes")
		})
	}
}

func TestDishService_Search_Success(t *testing.T) {
	logger := zerolog.Nop()

	expected := []model.DishResult{
		{RestaurantID: 1, RestaurantName: "Hyderabadi Spice House", City: "Hyderabad",
			DishName: "Chicken Biryani", DishPrice: 220, OrderCount: 96},
		{RestaurantID: 5, RestaurantName: "Bangalore Biryani", City: "Bangalore",
			DishName: "Chicken Biryani", DishPrice: 225, OrderCount: 91},
	}

	mockRepo := new(MockDishRepository)
	mockRepo.On("SearchDishes", mock.Anything,
		model.SearchQuery{Name: "Chicken Biryani", MinPrice: 100, MaxPrice: 300}).
		Return(expected, nil)

	svc := NewDishService(mockRepo, logger)

	results, err := svc.Search(context.Background(), "  Chicken Biryani  ", "100", "300")

	require.NoError(t, err)
	assert.Equal(t, expected, results)
	mockRepo.AssertExpectations(t)
}

func TestDishService_Search_EqualMinMax(t *testing.T) {
	mockRepo := new(MockDishRepository)
	mockRepo.On("SearchDishes", mock.Anything,
		model.SearchQuery{Name: "naan", MinPrice: 50, MaxPrice: 50}).
		Return([]model.DishResult{}, nil)

	svc := NewDishService(mockRepo, zerolog.Nop())

	results, err := svc.Search(context.Background(), "naan", "50", "50")

	require.NoError(t, err)
	assert.Empty(t, results)
	mockRepo.AssertExpectations(t)
}

func TestDishService_Search_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")

	mockRepo := new(MockDishRepository)
	mockRepo.On("SearchDishes", mock.Anything, mock.Anything).Return(nil, repoErr)

	svc := NewDishService(mockRepo, zerolog.Nop())

	results, err := svc.Search(context.Background(), "biryani", "0", "1000")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	var domainErr *model.DomainError
	assert.False(t, errors.As(err, &domainErr), "store failures must not surface as domain errors")
	assert.Nil(t, results)
}
