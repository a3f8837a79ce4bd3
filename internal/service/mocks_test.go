package service

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCycleStore mocks the store.CycleStore interface
type MockCycleStore struct {
	mock.Mock
}

func (m *MockCycleStore) Create(ctx context.Context, cycle *domain.CycleRecord) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

func (m *MockCycleStore) List(ctx context.Context) ([]*domain.CycleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CycleRecord), args.Error(1)
}

func (m *MockCycleStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCycleStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCycleStore) WithTx(_ *sql.Tx) store.CycleStore {
	return m
}

// MockPregnancyStore mocks the store.PregnancyStore interface
type MockPregnancyStore struct {
	mock.Mock
}

func (m *MockPregnancyStore) Create(ctx context.Context, p *domain.PregnancyRecord) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPregnancyStore) List(ctx context.Context) ([]*domain.PregnancyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PregnancyRecord), args.Error(1)
}

func (m *MockPregnancyStore) WithTx(_ *sql.Tx) store.PregnancyStore {
	return m
}

// MockWeightStore mocks the store.WeightStore interface
type MockWeightStore struct {
	mock.Mock
}

func (m *MockWeightStore) Create(ctx context.Context, w *domain.WeightRecord) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWeightStore) List(ctx context.Context) ([]*domain.WeightRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WeightRecord), args.Error(1)
}

func (m *MockWeightStore) WithTx(_ *sql.Tx) store.WeightStore {
	return m
}

// MockPostpartumStore mocks the store.PostpartumStore interface
type MockPostpartumStore struct {
	mock.Mock
}

func (m *MockPostpartumStore) Create(ctx context.Context, p *domain.PostpartumRecord) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPostpartumStore) List(ctx context.Context) ([]*domain.PostpartumRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PostpartumRecord), args.Error(1)
}

func (m *MockPostpartumStore) WithTx(_ *sql.Tx) store.PostpartumStore {
	return m
}

// recordingObserver captures observer callbacks.
type recordingObserver struct {
	mu          sync.Mutex
	operations  map[string][]bool
	created     []string
	deleted     []string
	predictions []string
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{operations: make(map[string][]bool)}
}

func (o *recordingObserver) Observe(_ context.Context, operation string, success bool, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations[operation] = append(o.operations[operation], success)
}

func (o *recordingObserver) RecordCreated(entity string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created = append(o.created, entity)
}

func (o *recordingObserver) RecordDeleted(entity string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deleted = append(o.deleted, entity)
}

func (o *recordingObserver) PredictionMade(kind string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.predictions = append(o.predictions, kind)
}

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }
