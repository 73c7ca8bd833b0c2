package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/quayside/manhunt/comms"

	"nhooyr.io/websocket"
)

// wsJSONMessage matches the framing the web gateway uses.
type wsJSONMessage struct {
	Head string          `json:"head"`
	Data json.RawMessage `json:"data"`
}

func sendMessage(ctx context.Context, ws *websocket.Conn, msg comms.Message) error {
	w, err := ws.Writer(ctx, websocket.MessageText)
	if err != nil {
		return err
	}
	defer w.Close()

	jmsg := wsJSONMessage{
		Head: string(msg.Head),
		Data: msg.Data,
	}

	tmsg, _ := json.Marshal(jmsg)

	_, err = w.Write(tmsg)
	if err != nil {
		return err
	}

	return w.Close()
}

func readMessage(ctx context.Context, ws *websocket.Conn) (comms.Message, error) {
	typ, r, err := ws.Reader(ctx)
	if err != nil {
		return comms.Message{}, err
	}

	if typ != websocket.MessageText {
		return comms.Message{}, fmt.Errorf("server sent a %v", typ)
	}

	bytes, err := io.ReadAll(r)
	if err != nil {
		return comms.Message{}, err
	}
	msg := wsJSONMessage{}
	err = json.Unmarshal(bytes, &msg)
	if err != nil {
		return comms.Message{}, err
	}

	return comms.Message{Head: comms.Head(msg.Head), Data: msg.Data}, nil
}
