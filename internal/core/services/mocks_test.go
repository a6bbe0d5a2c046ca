package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// --- Mock RecordRepository ---
type MockRecordRepository[T any] struct {
	mock.Mock
}

func (m *MockRecordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRecordRepository[T]) Save(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository[T]) Update(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ptr[V any](v V) *V {
	return &v
}
