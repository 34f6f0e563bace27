package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptchaGenerateRotate(t *testing.T) {
	svc, err := NewCaptchaServiceRotate(time.Minute, 15, 220)
	require.NoError(t, err)

	ctx := context.Background()

	first, err := svc.GenerateRotate(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.MasterImageBase64)
	assert.NotEmpty(t, first.ThumbImageBase64)

	second, err := svc.GenerateRotate(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCaptchaVerifyUnknownChallenge(t *testing.T) {
	svc, err := NewCaptchaServiceRotate(time.Minute, 15, 220)
	require.NoError(t, err)

	assert.False(t, svc.VerifyRotate(context.Background(), "no-such-challenge", 90))
}

func TestCaptchaChallengeIsConsumed(t *testing.T) {
	svc, err := NewCaptchaServiceRotate(time.Minute, 15, 220)
	require.NoError(t, err)

	ctx := context.Background()
	ch, err := svc.GenerateRotate(ctx)
	require.NoError(t, err)

	// One attempt consumes the challenge whatever the outcome
	_ = svc.VerifyRotate(ctx, ch.ID, 10)
	assert.False(t, svc.VerifyRotate(ctx, ch.ID, 10))
}