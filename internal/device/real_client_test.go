package device

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClient_Execute(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "op", r.URL.Query().Get("type"))
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Equal(t, CmdChassisReady, r.URL.Query().Get("cmd"))
		fmt.Fprint(w, `<response status="success"><result>yes</result></response>`)
	}))
	defer srv.Close()

	c := NewRealClient("unused", "secret-key", WithBaseURL(srv.URL+"/api/"))

	resp, err := c.Execute(context.Background(), CmdChassisReady)
	require.NoError(t, err)
	assert.Equal(t, "yes", resp.ResultText())
}

func TestRealClient_Execute_ApplianceError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<response status="error"><msg>unknown command</msg></response>`)
	}))
	defer srv.Close()

	c := NewRealClient("unused", "key", WithBaseURL(srv.URL+"/api/"))

	_, err := c.Execute(context.Background(), "<bogus/>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRealClient_Execute_HTTPError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewRealClient("unused", "key", WithBaseURL(srv.URL+"/api/"))

	_, err := c.Execute(context.Background(), CmdChassisReady)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected HTTP status 502")
}

func TestRealClient_Execute_Unreachable(t *testing.T) {
	t.Parallel()
	// Reserved TEST-NET-1 address; connection fails immediately or times out.
	c := NewRealClient("unused", "key",
		WithBaseURL("http://192.0.2.1:9/api/"),
		WithRequestTimeout(100*time.Millisecond),
	)

	_, err := c.Execute(context.Background(), CmdChassisReady)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestRealClient_InstallVersion(t *testing.T) {
	t.Parallel()
	var cmds []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cmds = append(cmds, r.URL.Query().Get("cmd"))
		fmt.Fprint(w, `<response status="success"><result><job>12</job></result></response>`)
	}))
	defer srv.Close()

	c := NewRealClient("unused", "key", WithBaseURL(srv.URL+"/api/"))

	err := c.InstallVersion(context.Background(), "9.0.3-h3", true)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, SoftwareInstall("9.0.3-h3"), cmds[0])
	assert.Equal(t, CmdRestart, cmds[1])
}

func TestRealClient_InstallVersion_NoRestart(t *testing.T) {
	t.Parallel()
	var cmds []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cmds = append(cmds, r.URL.Query().Get("cmd"))
		fmt.Fprint(w, `<response status="success"/>`)
	}))
	defer srv.Close()

	c := NewRealClient("unused", "key", WithBaseURL(srv.URL+"/api/"))

	err := c.InstallVersion(context.Background(), "9.0.3-h3", false)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, SoftwareInstall("9.0.3-h3"), cmds[0])
}

func TestNewRealClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()
	c := NewRealClient("fw1.example.com", "key")
	assert.Equal(t, "https://fw1.example.com/api/", c.baseURL)
}
