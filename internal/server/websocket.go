package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/cdterm/internal/logging"
	"github.com/muurk/cdterm/internal/nav"
	"github.com/muurk/cdterm/internal/terminal"
)

const (
	// Time allowed to write a frame to the page
	writeWait = 10 * time.Second

	// Maximum frame size accepted from the page
	maxMessageSize = 4096
)

// Timing holds the introduction delays of a session
type Timing struct {
	IntroDelay time.Duration // Introduction log fully visible
	FadeDelay  time.Duration // Fade-out before the prompt appears
}

// session is one page's terminal. Only the run loop touches the controller.
type session struct {
	conn       *websocket.Conn
	remoteAddr string
	timing     Timing
	ctrl       *terminal.Controller
	greeted    bool

	// Closed when readLoop returns
	readDone chan struct{}

	// Frames produced by navigation during the current event
	pending []any
}

func newSession(conn *websocket.Conn, remoteAddr string, timing Timing) *session {
	s := &session{
		conn:       conn,
		remoteAddr: remoteAddr,
		timing:     timing,
		readDone:   make(chan struct{}),
	}
	s.ctrl = terminal.New(nav.New(nav.LocationFunc(s.leave)))
	return s
}

// leave queues a navigate frame; it is sent after the state frame of the
// event that caused it.
func (s *session) leave(href string) {
	s.pending = append(s.pending, NavigateFrame{Type: FrameNavigate, Location: href})
}

// run processes client frames and the startup timers in order until the
// connection closes or ctx is cancelled. The reader is stopped when run
// returns, even if it is waiting to hand over a frame.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan ClientFrame)
	readErr := make(chan error, 1)
	go s.readLoop(ctx, frames, readErr)

	var introTimer, fadeTimer <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			return err

		case f := <-frames:
			var err error
			introTimer, err = s.handleFrame(f, introTimer)
			if err != nil {
				return err
			}

		case <-introTimer:
			introTimer = nil
			if err := s.write(FrameIntro, IntroFrame{Type: FrameIntro, Phase: IntroFade}); err != nil {
				return err
			}
			fadeTimer = time.After(s.timing.FadeDelay)

		case <-fadeTimer:
			fadeTimer = nil
			if err := s.write(FrameIntro, IntroFrame{Type: FrameIntro, Phase: IntroHidden}); err != nil {
				return err
			}
			if err := s.apply(s.ctrl.Boot()); err != nil {
				return err
			}
		}
	}
}

// handleFrame applies one client frame. It returns the intro timer, which a
// hello frame may start.
func (s *session) handleFrame(f ClientFrame, introTimer <-chan time.Time) (<-chan time.Time, error) {
	switch f.Type {
	case FrameHello:
		if s.greeted {
			logging.Debug("Ignoring repeated hello", zap.String("remote_addr", s.remoteAddr))
			return introTimer, nil
		}
		s.greeted = true

		if f.Intro {
			// Show the empty init state while the introduction plays
			if err := s.apply(terminal.Outcome{}); err != nil {
				return introTimer, err
			}
			return time.After(s.timing.IntroDelay), nil
		}
		return introTimer, s.apply(s.ctrl.Boot())

	case FrameKey:
		key, ok := terminal.ParseKey(f.Key)
		if !ok {
			logging.Debug("Ignoring unknown key",
				zap.String("remote_addr", s.remoteAddr),
				zap.String("key", f.Key),
			)
			return introTimer, nil
		}
		return introTimer, s.apply(s.ctrl.Handle(terminal.Event{Key: key, Input: f.Input}))

	case FrameSelect:
		return introTimer, s.apply(s.ctrl.Select(f.Index))

	default:
		logging.Warn("Unknown frame type",
			zap.String("remote_addr", s.remoteAddr),
			zap.String("type", f.Type),
		)
		return introTimer, nil
	}
}

// apply sends the state after an event, followed by any navigation it caused.
func (s *session) apply(out terminal.Outcome) error {
	if err := s.write(FrameState, newStateFrame(s.ctrl, out)); err != nil {
		return err
	}

	pending := s.pending
	s.pending = nil
	for _, frame := range pending {
		if err := s.write(FrameNavigate, frame); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) write(frameType string, frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to encode %s frame: %w", frameType, err)
	}

	logging.LogFrame(s.remoteAddr, "sent", frameType, data)

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write %s frame: %w", frameType, err)
	}
	return nil
}

// readLoop decodes frames from the page and hands them to the run loop.
// Malformed frames are logged and skipped.
func (s *session) readLoop(ctx context.Context, frames chan<- ClientFrame, readErr chan<- error) {
	defer close(s.readDone)

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		if msgType != websocket.TextMessage {
			logging.Debug("Ignoring non-text frame",
				zap.String("remote_addr", s.remoteAddr),
				zap.Int("message_type", msgType),
			)
			continue
		}

		var f ClientFrame
		if err := json.Unmarshal(data, &f); err != nil {
			logging.Warn("Malformed frame",
				zap.String("remote_addr", s.remoteAddr),
				zap.Error(err),
			)
			continue
		}
		logging.LogFrame(s.remoteAddr, "received", f.Type, data)

		select {
		case frames <- f:
		case <-ctx.Done():
			return
		}
	}
}
