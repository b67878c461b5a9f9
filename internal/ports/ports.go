package ports

import "io"

// Sink receives rendered print output.
type Sink interface {
	io.Writer
}

// Publisher publishes payloads to a message topic.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}
