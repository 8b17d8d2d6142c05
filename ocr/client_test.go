//go:build ocr

package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClient_RecognizeImage(t *testing.T) {
	client := newTestClient(t)

	// The image is just a rectangle; only check that recognition runs.
	_, err := client.RecognizeImage(context.Background(), createTestPNG(100, 50))
	assert.NoError(t, err)
}

func TestClient_RecognizeImageCanceled(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.RecognizeImage(ctx, createTestPNG(100, 50))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Settings(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.SetLanguage("eng"))
	require.NoError(t, client.SetPageSegMode(PSM_SINGLE_LINE))
}

func TestNewEngine_Gosseract(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine = EngineGosseract

	engine, closeFn, err := NewEngine(cfg, nil)
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer closeFn()

	assert.IsType(t, &Client{}, engine)
}
