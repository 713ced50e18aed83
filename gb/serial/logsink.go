// Package serial stands in for the DMG's link-cable port. It only ever
// logs outgoing bytes: sub-instruction bus interleaving and actual
// multiplayer link semantics are out of scope for this core.
package serial

import (
	"log/slog"

	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/mrsharp/gbcore/gb/bit"
)

// Port is the minimal interface the bus needs from a device connected to
// SB/SC. Implementations must only accept reads/writes to addr.SB and
// addr.SC.
type Port interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Tick(cycles int)
	Reset()
}

// LogSink completes every transfer immediately and logs the transmitted
// byte, buffering into lines for readability. It never raises the Serial
// interrupt: no interrupt handler is wired, since on real hardware the
// interrupt only fires once an external peer acknowledges the byte, and
// this sink has no peer.
type LogSink struct {
	sb, sc byte
	line   []byte
	logger *slog.Logger
}

func NewLogSink() *LogSink {
	return &LogSink{logger: slog.Default()}
}

func (s *LogSink) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc
	default:
		return 0xFF
	}
}

func (s *LogSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.maybeTransfer()
	}
}

func (s *LogSink) Tick(cycles int) {
	// Transfers complete synchronously; nothing to advance.
}

func (s *LogSink) Reset() {
	s.sb = 0
	s.sc = 0
	s.line = s.line[:0]
}

func (s *LogSink) maybeTransfer() {
	if !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}

	b := s.sb
	if b == 0 || b == '\n' || b == '\r' {
		if len(s.line) > 0 {
			s.logger.Info("serial", "line", string(s.line))
			s.line = s.line[:0]
		}
	} else {
		s.line = append(s.line, b)
	}

	s.sb = 0xFF
	s.sc = bit.Reset(7, s.sc)
}
