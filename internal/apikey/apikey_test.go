package apikey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("", time.Hour)
	require.ErrorIs(t, err, ErrNoSecret)

	g, err := New("s3cret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindow, g.Window())
}

func TestKeyStableWithinWindow(t *testing.T) {
	g, err := New("s3cret", time.Hour)
	require.NoError(t, err)

	start := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	k := g.Key(start)
	assert.Len(t, k, 64)
	assert.Equal(t, k, g.Key(start.Add(59*time.Minute)))
	assert.NotEqual(t, k, g.Key(start.Add(time.Hour)))
}

func TestVerify(t *testing.T) {
	g, err := New("s3cret", time.Hour)
	require.NoError(t, err)

	issued := time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)
	key := g.Key(issued)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"same window", issued.Add(10 * time.Minute), true},
		{"next window", issued.Add(time.Hour), true},
		{"previous window", issued.Add(-time.Hour), true},
		{"two windows later", issued.Add(2 * time.Hour), false},
		{"two windows earlier", issued.Add(-2 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Verify(key, tt.at))
		})
	}

	assert.False(t, g.Verify("", issued))
	assert.False(t, g.Verify("deadbeef", issued))
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	a, _ := New("alpha", time.Hour)
	b, _ := New("beta", time.Hour)
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	assert.False(t, b.Verify(a.Key(now), now))
}

func TestExpires(t *testing.T) {
	g, _ := New("s3cret", time.Hour)
	now := time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC), g.Expires(now))
}
