package game

type GameError struct {
	Code string
	Msg  string
}

func (e *GameError) ErrorCode() string { return e.Code }
func (e *GameError) Error() string     { return e.Msg }

var (
	// ErrGameFull means the roster already has its fugitive and pursuers
	ErrGameFull = &GameError{"GAMEFULL", "game is full"}
	// ErrColourTaken means a player with this colour has already joined
	ErrColourTaken = &GameError{"COLOURTAKEN", "colour already taken"}
	// ErrNotReady means that can't happen until every player has joined
	ErrNotReady = &GameError{"NOTREADY", "game is not ready"}
	// ErrBadRequest is for bad requests
	ErrBadRequest = &GameError{"BADREQUEST", "bad request"}
)
