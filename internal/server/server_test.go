package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regional-portal/geo-backend/internal/config"
)

func TestServer_StopBeforeRun(t *testing.T) {
	srv := NewServer(config.HttpServer{Port: "0", Timeout: time.Second, IdleTimeout: time.Second}, http.NotFoundHandler())
	assert.Equal(t, ":0", srv.Addr())

	require.NoError(t, srv.Stop(context.Background()))
	assert.ErrorIs(t, srv.Run(), http.ErrServerClosed)
}
