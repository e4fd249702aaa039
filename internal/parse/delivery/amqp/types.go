package amqp

import "task-nlp-service/internal/model"

// PatternParseText is the message pattern this consumer serves.
const PatternParseText = "parse_text"

// requestEnvelope is the RPC request published by the backend.
type requestEnvelope struct {
	Pattern string `json:"pattern"`
	Data    string `json:"data"`
}

// responseEnvelope is the RPC reply. Err is null on success; Response is
// null on failure. IsDisposed tells the caller no further replies follow.
type responseEnvelope struct {
	Response   *model.TaskRecord `json:"response"`
	IsDisposed bool              `json:"isDisposed"`
	Err        *string           `json:"err"`
}
