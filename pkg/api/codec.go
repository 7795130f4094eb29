package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name of the JSON wire format. Requests use
// the application/json content type.
const CodecName = "json"

// jsonCodec marshals the plain Go message structs of this package.
type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecName }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON configures a handler or client to speak the JSON codec.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
