package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

func TestCertificateIssuedPayload(t *testing.T) {
	hub := NewHub()

	hub.CertificateIssued(&model.Certificate{
		UniqueID:      "uid-1",
		EventID:       "devfest-2025",
		EventName:     "DevFest 2025",
		RecipientName: "Juan Dela Cruz",
		Date:          time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC),
	})

	select {
	case payload := <-hub.Broadcast:
		var event issuanceEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, "certificate_issued", event.Type)
		assert.Equal(t, "uid-1", event.UniqueID)
		assert.Equal(t, "Juan Dela Cruz", event.RecipientName)
	default:
		t.Fatal("expected a broadcast message")
	}
}

func TestCertificateIssuedNeverBlocks(t *testing.T) {
	hub := NewHub()

	// overflow the buffered channel; issuance must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.CertificateIssued(&model.Certificate{UniqueID: "uid", EventID: "evt"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("CertificateIssued blocked")
	}
}

func TestClientCountStartsAtZero(t *testing.T) {
	assert.Equal(t, 0, NewHub().GetClientCount())
}
