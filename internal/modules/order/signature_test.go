package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignatureRoundTrip(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now()
	sig := SignPayload(payload, "secret", now)

	assert.NoError(t, VerifySignature(payload, sig, "secret", DefaultTolerance, now))
}

func TestVerifySignatureRejections(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now()
	good := SignPayload(payload, "secret", now)

	tests := []struct {
		name    string
		payload []byte
		header  string
		secret  string
		at      time.Time
	}{
		{"wrong secret", payload, good, "other-secret", now},
		{"tampered payload", []byte(`{"id":"evt_2"}`), good, "secret", now},
		{"empty header", payload, "", "secret", now},
		{"garbage header", payload, "not-a-signature", "secret", now},
		{"missing timestamp", payload, "v1=abcdef", "secret", now},
		{"stale timestamp", payload, SignPayload(payload, "secret", now.Add(-10*time.Minute)), "secret", now},
		{"future timestamp", payload, SignPayload(payload, "secret", now.Add(10*time.Minute)), "secret", now},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature(tt.payload, tt.header, tt.secret, DefaultTolerance, tt.at)
			require.ErrorIs(t, err, ErrBadSignature)
		})
	}
}

func TestVerifySignatureAcceptsAnyV1Candidate(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now()
	good := SignPayload(payload, "secret", now)

	// Providers may send multiple v1 entries during secret rotation.
	header := good + ",v1=0000000000000000000000000000000000000000000000000000000000000000"
	assert.NoError(t, VerifySignature(payload, header, "secret", DefaultTolerance, now))
}
