package boardserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

func newTestServer(t *testing.T, fixture *Fixture, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	opts = append([]Option{WithLogger(logging.Discard()), WithSecret([]byte("test-secret"))}, opts...)
	s, err := New(fixture, opts...)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func newClient(ts *httptest.Server) *gateway.Client {
	return gateway.NewClient(ts.URL, 5*time.Second, gateway.WithLogger(logging.Discard()))
}

func TestEndToEnd_LoginThenFetch(t *testing.T) {
	_, ts := newTestServer(t, nil)
	client := newClient(ts)
	ctx := context.Background()

	token, err := client.Login(ctx, "demo", "demo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := client.FetchIdentity(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Demo User", user.Name)

	board, err := client.FetchBoard(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []types.ColumnID{"todo", "doing", "done"}, board.IDs())
	for _, card := range board.Columns[0].Cards {
		assert.NotEmpty(t, card.ID, "cards should get generated ids")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	_, ts := newTestServer(t, nil)

	_, err := newClient(ts).Login(context.Background(), "demo", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}

func TestProtectedEndpoints_RequireToken(t *testing.T) {
	_, ts := newTestServer(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, path := range []string{gateway.PathUserInfo, gateway.PathColumns} {
		for _, tt := range tests {
			t.Run(path+"/"+tt.name, func(t *testing.T) {
				req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
				require.NoError(t, err)
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}

				resp, err := http.DefaultClient.Do(req)
				require.NoError(t, err)
				defer func() { _ = resp.Body.Close() }()

				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			})
		}
	}
}

func TestToken_FromOtherSecretRejected(t *testing.T) {
	_, other := newTestServer(t, nil, WithSecret([]byte("other-secret")))
	token, err := newClient(other).Login(context.Background(), "demo", "demo")
	require.NoError(t, err)

	_, ts := newTestServer(t, nil)
	_, err = newClient(ts).FetchBoard(context.Background(), token)
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}

func TestToken_Expired(t *testing.T) {
	_, ts := newTestServer(t, nil, WithTokenTTL(-time.Minute))
	client := newClient(ts)

	token, err := client.Login(context.Background(), "demo", "demo")
	require.NoError(t, err)

	_, err = client.FetchIdentity(context.Background(), token)
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	content := `users:
  - username: ann
    password: secret
    name: Ann
    columns:
      - id: "7"
        title: Backlog
        cards:
          - title: First
            author: Ann
      - title: Untitled id
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fixture, err := LoadFixture(path)
	require.NoError(t, err)

	_, ts := newTestServer(t, fixture)
	client := newClient(ts)
	ctx := context.Background()

	token, err := client.Login(ctx, "ann", "secret")
	require.NoError(t, err)

	board, err := client.FetchBoard(ctx, token)
	require.NoError(t, err)
	require.Len(t, board.Columns, 2)
	assert.Equal(t, types.ColumnID("7"), board.Columns[0].ID)
	assert.NotEmpty(t, board.Columns[1].ID)
	assert.Equal(t, "Ann", board.Columns[0].Cards[0].Author)
}

func TestNew_InvalidFixtures(t *testing.T) {
	tests := []struct {
		name    string
		fixture *Fixture
		wantErr string
	}{
		{"no users", &Fixture{}, "no users"},
		{"duplicate username", &Fixture{Users: []FixtureUser{{Username: "a"}, {Username: "a"}}}, "duplicate username"},
		{"missing username", &Fixture{Users: []FixtureUser{{Password: "x"}}}, "no username"},
		{
			"duplicate column ids",
			&Fixture{Users: []FixtureUser{{Username: "a", Columns: []models.Column{{ID: "c"}, {ID: "c"}}}}},
			"duplicate column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fixture, WithLogger(logging.Discard()))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "error %q should mention %q", err, tt.wantErr)
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	s, err := New(nil, WithLogger(logging.Discard()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
