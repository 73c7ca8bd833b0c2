package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/manhunt/comms"
	"github.com/quayside/manhunt/game"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	board, err := game.ParseBoard([]byte(`{
		"nodes": {
			"1": {"links": ["t:2"]},
			"2": {"links": []}
		}
	}`))
	require.NoError(t, err)
	return &server{
		board:  board,
		store:  game.NewMemoryTokenStore(),
		games:  map[string]*oneGame{},
		coreCh: make(chan interface{}, 100),
	}
}

func TestDisconnectClosesClientChannel(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.createGame("g1", 1))

	down := make(chan comms.Message, 4)
	require.NoError(t, s.connect(connectMsg{Game: "g1", Key: "w1", Client: clientBundle{down}}))

	s.processMessage(disconnectMsg{Game: "g1", Key: "w1"})

	_, open := <-down
	assert.False(t, open, "down channel should be closed on disconnect")
	assert.NotContains(t, s.games["g1"].clients, "w1")
}

func TestReconnectReplacesOldChannel(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.createGame("g1", 1))

	old := make(chan comms.Message, 4)
	require.NoError(t, s.connect(connectMsg{Game: "g1", Key: "w1", Client: clientBundle{old}}))
	fresh := make(chan comms.Message, 4)
	require.NoError(t, s.connect(connectMsg{Game: "g1", Key: "w1", Client: clientBundle{fresh}}))

	// the superseded connection's channel is closed, not leaked
	_, open := <-old
	assert.False(t, open)

	// and the fresh one receives broadcasts
	s.processMessage(textFromUser{Game: "g1", Who: "w1", Text: "hello"})
	select {
	case msg := <-fresh:
		assert.Equal(t, comms.Head("text"), msg.Head)
	default:
		t.Fatal("expected a broadcast on the fresh channel")
	}
}

func TestDeleteGameNotifiesAndDetachesClients(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.createGame("g1", 1))

	down := make(chan comms.Message, 4)
	require.NoError(t, s.connect(connectMsg{Game: "g1", Key: "w1", Client: clientBundle{down}}))

	rep := make(chan error, 1)
	s.processMessage(deleteGameMsg{Name: "g1", Rep: rep})
	require.NoError(t, <-rep)

	// the client hears the game is gone, then the channel closes
	msg, open := <-down
	require.True(t, open)
	assert.Equal(t, comms.Head("deleted"), msg.Head)
	_, open = <-down
	assert.False(t, open)

	_, exists := s.games["g1"]
	assert.False(t, exists)
}
