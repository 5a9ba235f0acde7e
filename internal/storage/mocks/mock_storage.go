package mocks

import (
	"context"
	"io"

	"docstore/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, name string, r io.Reader) (storage.FileInfo, error) {
	args := m.Called(ctx, name, r)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader) storage.FileInfo); ok {
		return f(ctx, name, r), args.Error(1)
	}
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, location string) (io.ReadCloser, storage.FileInfo, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.FileInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.FileInfo), args.Error(2)
}

func (m *MockStorage) Delete(ctx context.Context, location string) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockStorage) Root() string {
	args := m.Called()
	return args.String(0)
}
