package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"roheline", KindGreen},
		{"Roheline", KindGreen},
		{"ROHELINE", KindGreen},
		{"green", KindGreen},
		{"punane", KindRed},
		{" Punane ", KindRed},
		{"red", KindRed},
		{"", KindNone},
		{"kollane", KindUnknown},
		{"-", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKind(tt.raw))
		})
	}
}

func TestRegistryValue(t *testing.T) {
	v, ok := KindGreen.RegistryValue()
	assert.True(t, ok)
	assert.Equal(t, "roheline", v)

	v, ok = KindRed.RegistryValue()
	assert.True(t, ok)
	assert.Equal(t, "punane", v)

	_, ok = KindNone.RegistryValue()
	assert.False(t, ok)
	_, ok = KindUnknown.RegistryValue()
	assert.False(t, ok)
}

func TestCertificateValidOn(t *testing.T) {
	expiry := time.Date(2026, 5, 25, 0, 0, 0, 0, time.UTC)
	cert := &Certificate{Kind: KindGreen, ExpiryDate: expiry}

	assert.True(t, cert.ValidOn(time.Date(2026, 5, 24, 12, 0, 0, 0, time.UTC)))
	assert.True(t, cert.ValidOn(time.Date(2026, 5, 25, 23, 59, 0, 0, time.UTC)), "expiry day is still valid")
	assert.False(t, cert.ValidOn(time.Date(2026, 5, 26, 0, 0, 1, 0, time.UTC)))

	cert.Kind = KindUnknown
	assert.False(t, cert.ValidOn(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	assert.False(t, (&Certificate{Kind: KindRed}).ValidOn(time.Now()), "absent expiry is never valid")
}

func TestCertificateStatusOn(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	future := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cert Certificate
		want Status
	}{
		{"certified and current", Certificate{Kind: KindGreen, ExpiryDate: future}, StatusValid},
		{"certified and lapsed", Certificate{Kind: KindRed, ExpiryDate: past}, StatusExpired},
		{"lapsed with unknown kind", Certificate{Kind: KindUnknown, ExpiryDate: past}, StatusExpired},
		{"unknown kind with future expiry", Certificate{Kind: KindUnknown, ExpiryDate: future}, StatusInvalid},
		{"no kind with future expiry", Certificate{Kind: KindNone, ExpiryDate: future}, StatusInvalid},
		{"no expiry", Certificate{Kind: KindGreen}, StatusInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cert.StatusOn(now))
		})
	}
}
