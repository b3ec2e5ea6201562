package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-ledger/src/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(map[string]string{"LOG_LEVEL": "error"})
	require.NoError(t, err)
	return cfg
}

func TestConsoleCommand(t *testing.T) {
	cfg := testConfig(t)
	root := NewRootCommand(func() (config.Config, error) { return cfg, nil })

	var out bytes.Buffer
	root.SetIn(strings.NewReader("cu\n1\nAna\n01-02-1980\nStreet\nac\n1\nlc\nq\n"))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"console"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Holder:\t\tAna")
}

func TestServeCommandConfigError(t *testing.T) {
	root := NewRootCommand(func() (config.Config, error) { return config.Config{}, errors.New("bad env") })
	root.SetArgs([]string{"serve"})
	root.SetOut(io.Discard)

	err := root.ExecuteContext(context.Background())
	require.ErrorContains(t, err, "bad env")
}

func TestServeStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, newApp(cfg), listener) }()

	base := "http://" + listener.Addr().String()
	resp, err := http.Post(base+"/clients", "application/json",
		strings.NewReader(`{"nationalId":"1","fullName":"Ana","birthDate":"1980-02-01","address":"Street"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "ledger_clients_registered_total 1")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
