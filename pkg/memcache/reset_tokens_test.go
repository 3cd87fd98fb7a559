package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@example.com", time.Minute)

	assert.Equal(t, "a@example.com", store.Consume("tok"))
	assert.Equal(t, "", store.Consume("tok"))
}

func TestPeekDoesNotConsume(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@example.com", time.Minute)

	email, ok := store.Peek("tok")
	assert.True(t, ok)
	assert.Equal(t, "a@example.com", email)

	assert.Equal(t, "a@example.com", store.Consume("tok"))
}

func TestExpiredTokenIsGone(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@example.com", -time.Second)

	_, ok := store.Peek("tok")
	assert.False(t, ok)
	assert.Equal(t, "", store.Consume("tok"))
}

func TestUnknownToken(t *testing.T) {
	store := NewResetTokens()
	_, ok := store.Peek("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.Consume("missing"))
}
