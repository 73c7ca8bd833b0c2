package server

import (
	"github.com/quayside/manhunt/comms"
)

// GameInfo is the outside view of one game: everything here is safe to
// show a spectator, so the fugitive's location is his last revealed one.
type GameInfo struct {
	Name      string         `json:"name"`
	Players   []string       `json:"players"`
	Ready     bool           `json:"ready"`
	Over      bool           `json:"over"`
	Winners   []string       `json:"winners,omitempty"`
	Round     int            `json:"round"`
	Playing   string         `json:"playing"`
	Locations map[string]int `json:"locations"`
}

type listGamesMsg struct {
	Rep chan []string
}

type createGameMsg struct {
	Name     string
	Pursuers int
	Rep      chan error
}

type queryGameMsg struct {
	Name string
	Rep  chan *GameInfo
}

type deleteGameMsg struct {
	Name string
	Rep  chan error
}

type connectMsg struct {
	Game   string
	Colour string // empty for a bare spectator
	Key    string
	Client clientBundle
	Rep    chan error
}

type disconnectMsg struct {
	Game string
	Key  string
}

type textFromUser struct {
	Game string
	Who  string
	Text string
}

type playFromUser struct {
	Game  string
	Who   string
	Move  comms.WireMove
	Token string
}

type clientBundle struct {
	downCh chan comms.Message
}
