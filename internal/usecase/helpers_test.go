package usecase

import (
	"context"
	"io"
	"sync"
	"testing"

	"easymed-booking/internal/catalog"
	"easymed-booking/internal/notify"
	"easymed-booking/internal/observability/metrics"
	"easymed-booking/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(repository.SampleDoctors())
	require.NoError(t, err)
	return c
}

func testMetrics() *metrics.BookingMetrics {
	return metrics.NewBookingMetrics(prometheus.NewRegistry())
}

type recordingSender struct {
	mu       sync.Mutex
	messages []notify.EmailMessage
	err      error
}

func (s *recordingSender) Send(ctx context.Context, msg notify.EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.err
}

func (s *recordingSender) sent() []notify.EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.EmailMessage(nil), s.messages...)
}
