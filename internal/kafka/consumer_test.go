package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	want := domain.Event{
		ID:           "3f1c9a5e-0000-4000-8000-000000000001",
		Type:         domain.EventTicketSold,
		FlightNumber: "SU100",
		Key:          4,
		OccurredAt:   time.Date(2025, 7, 14, 16, 45, 0, 0, time.UTC),
	}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := DecodeEvent(data)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeEvent_Invalid(t *testing.T) {
	_, err := DecodeEvent([]byte("not json"))

	assert.Error(t, err)
}

func TestNewProducer(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})

	assert.NotNil(t, p)
	assert.NoError(t, p.Close())
}
