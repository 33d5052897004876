package environment

import (
	"strings"
	"testing"

	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name                     string
		host, ctx, protocol      string
		wantHost, wantCtx, wantP string
	}{
		{"defaults", "localhost", "", "http", "localhost", "", HTTP},
		{"strip http scheme", "http://api.example.com", "", "", "api.example.com", "", HTTP},
		{"strip https scheme", "https://api.example.com:8443", "", "HTTPS", "api.example.com:8443", "", HTTPS},
		{"context path gets slash", "h", "app", "http", "h", "/app", HTTP},
		{"context path trailing slash", "h", "/app/", "http", "h", "/app", HTTP},
		{"lone slash kept", "h", "/", "http", "h", "/", HTTP},
		{"blank context path", "h", "   ", "http", "h", "", HTTP},
		{"unknown protocol", "h", "", "ftp", "h", "", HTTP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New("x", tt.host, tt.ctx, tt.protocol)
			assert.NotEmpty(t, e.ID)
			assert.Equal(t, tt.wantHost, e.Host)
			assert.Equal(t, tt.wantCtx, e.ContextPath)
			assert.Equal(t, tt.wantP, e.Protocol)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "http://localhost", Default().DisplayName())
	assert.Equal(t, "staging", New("staging", "s", "/api", "https").DisplayName())
	assert.Equal(t, "https://s/api", New("  ", "s", "/api", "https").String())
}

func TestConfigInvariants(t *testing.T) {
	cfg := NewConfig()
	require.Len(t, cfg.Environments, 1)
	first := cfg.Active()

	// the last environment cannot be removed
	assert.False(t, cfg.Remove(first.ID))
	assert.Len(t, cfg.Environments, 1)

	second := New("staging", "staging.example.com", "", "https")
	cfg.Add(second)
	assert.Equal(t, first.ID, cfg.Active().ID, "adding does not change the active environment")

	assert.True(t, cfg.SetActive(second.ID))
	assert.False(t, cfg.SetActive("missing"))
	assert.Equal(t, second.ID, cfg.Active().ID)

	// removing the active environment activates the first remaining one
	assert.False(t, cfg.Remove("missing"))
	assert.True(t, cfg.Remove(second.ID))
	assert.Equal(t, first.ID, cfg.Active().ID)
	assert.False(t, cfg.Remove(first.ID))
}

func TestConfigUpdateAndFind(t *testing.T) {
	cfg := NewConfig()
	env := New("dev", "localhost:8080", "", "http")
	cfg.Add(env)

	got, ok := cfg.Find("dev")
	require.True(t, ok)
	assert.Equal(t, env.ID, got.ID)
	got, ok = cfg.Find(env.ID)
	require.True(t, ok)
	assert.Equal(t, "dev", got.Name)

	env.SetHost("https://dev.example.com")
	assert.True(t, cfg.Update(env))
	got, _ = cfg.Environment(env.ID)
	assert.Equal(t, "dev.example.com", got.Host)

	assert.False(t, cfg.Update(New("ghost", "h", "", "")))
}

func TestConfigRepair(t *testing.T) {
	cfg := &Config{ActiveID: "dangling"}
	env := cfg.Active()
	assert.Len(t, cfg.Environments, 1)
	assert.Equal(t, env.ID, cfg.ActiveID)
	assert.NotNil(t, cfg.Headers)
	assert.NotNil(t, cfg.DefaultParameters)

	cfg = &Config{Environments: []Environment{{ID: "a", Host: "http://h", Protocol: "HTTPS", ContextPath: "x/"}}}
	cfg.Repair()
	assert.Equal(t, "a", cfg.ActiveID)
	assert.Equal(t, Environment{ID: "a", Host: "h", Protocol: HTTPS, ContextPath: "/x"}, cfg.Environments[0])
}

func TestSnapshotIsIndependent(t *testing.T) {
	cfg := NewConfig()
	cfg.SetHeader("Authorization", "Bearer a")
	snap := cfg.Snapshot()

	cfg.SetHeader("Authorization", "Bearer b")
	cfg.SetDefaultParameter("id", "42")
	cfg.Add(New("other", "o", "", ""))

	assert.Equal(t, "Bearer a", snap.Headers["Authorization"])
	assert.Empty(t, snap.DefaultParameters)
	assert.Len(t, snap.Environments, 1)
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		ctx, path, want string
	}{
		{"", "/users", "/users"},
		{"/", "/users", "/users"},
		{"/app", "/users", "/app/users"},
		{"/app/", "/users", "/app/users"},
		{"/app", "users", "/app/users"},
		{"/app", "/", "/app/"},
	}
	for _, tt := range tests {
		got := JoinPath(tt.ctx, tt.path)
		assert.Equal(t, tt.want, got, "JoinPath(%q, %q)", tt.ctx, tt.path)
	}

	for _, ctx := range []string{"", "/", "/a", "a/", "/a/b/"} {
		for _, path := range []string{"/", "/x", "/x/y"} {
			joined := JoinPath(NormalizeContextPath(ctx), path)
			assert.False(t, strings.Contains(joined, "//"), "JoinPath(%q, %q) = %q", ctx, path, joined)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	params := []endpoint.Param{
		{Kind: endpoint.Scalar, Name: "id", Value: "1"},
		{Kind: endpoint.Flattened, Name: "q", Value: "x"},
	}
	got := ApplyDefaults(params, map[string]string{"id": "42", "unused": "z"})
	assert.Equal(t, "42", got[0].Value)
	assert.Equal(t, "x", got[1].Value)
	assert.Equal(t, "1", params[0].Value, "input is not modified")
}

func TestResolve(t *testing.T) {
	cfg := NewConfig()
	env := New("prod", "api.example.com", "/v2", "https")
	cfg.Add(env)
	cfg.SetActive(env.ID)
	cfg.SetHeader("X-Trace", "1")
	cfg.SetHeader("Authorization", "Bearer t")
	cfg.SetDefaultParameter("id", "7")

	d := endpoint.Descriptor{
		Method: "getUser",
		Verb:   endpoint.GET,
		Path:   "/users/{id}",
		Params: []endpoint.Param{{Kind: endpoint.Scalar, Name: "id", Value: "1"}},
	}
	r := Resolve(d, cfg)

	assert.Equal(t, "https://api.example.com", r.Origin)
	assert.Equal(t, "/v2/users/{id}", r.RelativePath)
	assert.Equal(t, "https://api.example.com/v2/users/{id}", r.URL)
	assert.Equal(t, []Header{{"Authorization", "Bearer t"}, {"X-Trace", "1"}}, r.Headers)
	assert.Equal(t, "7", r.Params[0].Value)
	assert.False(t, r.HasBody)
	assert.True(t, r.HasHeader("authorization"))
	assert.False(t, r.HasHeader("Content-Type"))

	other := ResolveIn(d, cfg, cfg.Environments[0])
	assert.Equal(t, "http://localhost/users/{id}", other.URL)
}

func TestResolveBody(t *testing.T) {
	d := endpoint.Descriptor{
		Verb:    endpoint.POST,
		Path:    "/orders",
		HasBody: true,
		Params:  []endpoint.Param{{Kind: endpoint.Body, Name: endpoint.BodyParamName, Value: `{"qty": 1}`}},
	}
	cfg := NewConfig()
	cfg.SetDefaultParameter("body", "ignored")
	r := Resolve(d, cfg)
	assert.True(t, r.HasBody)
	assert.Equal(t, `{"qty": 1}`, r.Body)
	assert.Empty(t, r.Params)
}
