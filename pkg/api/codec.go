// Package api defines the Golfwager wire contract: request and response
// messages, procedure names, and Connect handler and client constructors.
//
// Messages are plain Go structs carried by a JSON codec, so the Connect
// protocol works from curl or a browser without generated code.
package api

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec marshals api messages with encoding/json.
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string { return c.name }

func (c jsonCodec) Marshal(msg any) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return b, nil
}

func (c jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// handlerCodecs covers both content types browsers send for JSON.
func handlerCodecs() []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
	}
}

// clientCodec makes clients speak application/json.
func clientCodec() connect.ClientOption {
	return connect.WithCodec(jsonCodec{name: "json"})
}
