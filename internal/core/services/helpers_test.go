package services_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

type memorySlot struct {
	lock   sync.Mutex
	data   map[string]string
	writes []string
	getErr error
	setErr error
}

func newMemorySlot() *memorySlot {
	return &memorySlot{data: make(map[string]string)}
}

func (m *memorySlot) Get(_ context.Context, key string) (string, bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.getErr != nil {
		return "", false, m.getErr
	}

	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memorySlot) Set(_ context.Context, key string, value string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.setErr != nil {
		return m.setErr
	}

	m.data[key] = value
	m.writes = append(m.writes, value)
	return nil
}

func (m *memorySlot) Writes() []string {
	m.lock.Lock()
	defer m.lock.Unlock()

	return append([]string(nil), m.writes...)
}

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func event(id string, price int64) domain.Event {
	return domain.Event{
		ID:       id,
		Title:    "Event " + id,
		Location: "Venue " + id,
		Price:    decimal.NewFromInt(price),
	}
}
