package mqtt

import (
	"bytes"
	"errors"

	"go.uber.org/zap"

	"github.com/mikey-austin/gx/internal/ports"
)

// Sink collects the output of one CLI invocation and publishes it as a
// single message when closed.
type Sink struct {
	pub   ports.Publisher
	topic string
	log   *zap.Logger
	buf   bytes.Buffer
	done  bool
}

// NewSink returns a sink publishing to topic.
func NewSink(pub ports.Publisher, topic string, log *zap.Logger) *Sink {
	if topic == "" {
		topic = DefaultTopic
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{pub: pub, topic: topic, log: log}
}

// Write buffers p until Close.
func (s *Sink) Write(p []byte) (int, error) {
	if s.done {
		return 0, errors.New("mqtt sink closed")
	}
	return s.buf.Write(p)
}

// Close publishes the buffered output, if any, and closes the publisher when
// it supports closing.
func (s *Sink) Close() error {
	if s.done {
		return nil
	}
	s.done = true

	var err error
	if s.buf.Len() > 0 {
		s.log.Debug("publishing output", zap.String("topic", s.topic), zap.Int("bytes", s.buf.Len()))
		err = s.pub.Publish(s.topic, 1, false, s.buf.Bytes())
	}
	if closer, ok := s.pub.(interface{ Close() error }); ok {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
