package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconsult/internal/config"
	"agroconsult/internal/pkg/jwt"
	"agroconsult/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:       "test",
		JWTSecret:    "router-secret",
		JWTTTL:       time.Hour,
		DefaultActor: "",
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(cfg, testutil.OpenDB(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, testConfig())

	rr := testutil.DoJSON(r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true,"hasDatabaseUrl":false,"dbOk":true}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_WritesNeedIdentity(t *testing.T) {
	cfg := testConfig()
	r := newTestRouter(t, cfg)

	rr := testutil.DoJSON(r, http.MethodPost, "/api/clients", map[string]any{"name": "Ana"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Caller identity required"}`, rr.Body.String())

	rr = testutil.DoJSON(r, http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	token, err := jwt.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken("agronomo")
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/api/clients", jsonBody(`{"name":"Ana"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rec := record(r, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"created_by":"agronomo"`)
}

func TestRouter_EveryResourceMounted(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultActor = "tester"
	r := newTestRouter(t, cfg)

	for _, path := range []string{
		"/api/clients", "/api/properties", "/api/plots", "/api/products",
		"/api/visits", "/api/evaluations", "/api/sales-orders",
	} {
		rr := testutil.DoJSON(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := testutil.DoJSON(r, http.MethodPost, "/api/seed", nil)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = testutil.DoJSON(r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, addr, http.NotFoundHandler(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
