package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle streams get a keepalive ping
const KeepaliveInterval = 30 * time.Second

// Event types for the spin feed
const (
	// EventTypeSpin is sent for every settled spin
	EventTypeSpin = "slots.spin"

	// EventTypeJackpot is sent in addition to EventTypeSpin when a spin hits the jackpot
	EventTypeJackpot = "slots.jackpot"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters a stream to a comma separated list of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "Feed client connected"
	LogMsgClientDisconnected = "Feed client disconnected"
	LogMsgEventBroadcast     = "Broadcasting feed event"
	LogMsgEventDropped       = "Feed buffer full, event dropped"
	LogMsgWriteError         = "Failed to write feed event"
	LogMsgStreamUnsupported  = "Streaming not supported by response writer"
)
