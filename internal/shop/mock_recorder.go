package shop

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// MockRecorder is a mock implementation of the Recorder interface
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveItem(category domain.Category, conjured bool, qualityDelta int, pastSellBy bool) {
	m.Called(category, conjured, qualityDelta, pastSellBy)
}

func (m *MockRecorder) ObserveDay(itemCount int) {
	m.Called(itemCount)
}
