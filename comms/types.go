package comms

// TurnOffer tells a player it is their turn. Location is their true one,
// Moves the full legal set, Token the one-shot key the reply must carry.
type TurnOffer struct {
	Location int        `json:"location"`
	Moves    []WireMove `json:"moves"`
	Token    string     `json:"token"`
}

// Submission is a player's reply to a TurnOffer.
type Submission struct {
	Move  WireMove `json:"move"`
	Token string   `json:"token"`
}

// GameOver announces the winners.
type GameOver struct {
	Winners []string `json:"winners"`
}

// TextMessage is chat, relayed to everyone in a game.
type TextMessage struct {
	Who  string `json:"who"`
	Text string `json:"text"`
}
