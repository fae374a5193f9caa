package httpapi

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manus-games/shadowcity/internal/game/session"
)

func wsURL(httpURL, token string) string {
	return strings.Replace(httpURL, "http://", "ws://", 1) + "/ws?token=" + token
}

func TestWebsocketRequiresValidToken(t *testing.T) {
	env := newTestEnv(t, &stubSource{})

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(env.server.URL, "bogus"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebsocketStreamsSessionEvents(t *testing.T) {
	env := newTestEnv(t, &stubSource{ints: []int{10}, floats: []float64{0.5, 0.99}})
	token := env.register(t, "vera")
	env.createCharacter(t, token, "Vera")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(env.server.URL, token), nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the server a moment to register the subscriber before the
	// action publishes its events.
	time.Sleep(50 * time.Millisecond)

	resp, _ := env.do(t, http.MethodPost, "/api/actions/job", token, jobRequest{JobID: "delivery"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev session.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "job_result", ev.Type)
	assert.NotNil(t, ev.Data)
}
