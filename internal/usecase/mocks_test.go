package usecase

import (
	"context"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

type mockCounter struct {
	count     int64
	err       error
	gotIntent domain.StructuredIntent
	calls     int
}

func (m *mockCounter) CountProducts(ctx context.Context, intent domain.StructuredIntent) (int64, error) {
	m.calls++
	m.gotIntent = intent
	return m.count, m.err
}

type mockSearcher struct {
	neighbors []domain.Neighbor
	err       error
	gotQuery  string
	gotK      int
	calls     int
}

func (m *mockSearcher) Search(ctx context.Context, query string, k int) ([]domain.Neighbor, error) {
	m.calls++
	m.gotQuery = query
	m.gotK = k
	return m.neighbors, m.err
}

type mockGraph struct {
	records []domain.GraphRecord
	err     error
	gotIDs  []string
	calls   int
}

func (m *mockGraph) FetchRecords(ctx context.Context, ids []string) ([]domain.GraphRecord, error) {
	m.calls++
	m.gotIDs = ids
	return m.records, m.err
}

type mockGenerator struct {
	answer     string
	gotRequest domain.GenerationRequest
	calls      int
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) string {
	m.calls++
	m.gotRequest = req
	return m.answer
}

func floatPtr(f float64) *float64 {
	return &f
}

func storeAt(name, address string, lat, lon float64) domain.Store {
	return domain.Store{Name: name, Address: address, Latitude: floatPtr(lat), Longitude: floatPtr(lon)}
}
