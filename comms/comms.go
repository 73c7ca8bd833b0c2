package comms

import (
	"encoding/json"
	"strings"
)

// Head routes a message, e.g. "turn" or "request:1:play". Parts are colon
// separated.
type Head string

// Fields splits the head into its parts.
func (h Head) Fields() []string {
	return strings.Split(string(h), ":")
}

// Message is the envelope for everything crossing a gateway.
type Message struct {
	Head Head            `json:"head"`
	Data json.RawMessage `json:"data"`
}

// Encode makes a message with a JSON body.
func Encode(head string, v interface{}) (Message, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Message{}, err
	}
	return Message{Head: Head(head), Data: data}, nil
}

// Decode reads a message body.
func Decode(m Message, v interface{}) error {
	return json.Unmarshal(m.Data, v)
}

// CommsError is an error that survives serialization.
type CommsError struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

func (e *CommsError) Error() string { return e.Msg }

type coded interface {
	ErrorCode() string
}

// WrapError makes any error sendable, keeping its code if it has one.
func WrapError(err error) *CommsError {
	if err == nil {
		return nil
	}
	if c, ok := err.(coded); ok {
		return &CommsError{Code: c.ErrorCode(), Msg: err.Error()}
	}
	return &CommsError{Code: "ERROR", Msg: err.Error()}
}

// ConnectResponse acknowledges a client connection.
type ConnectResponse struct {
	Err *CommsError `json:"error,omitempty"`
}
