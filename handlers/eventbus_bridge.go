package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"regexp"
	"sync"

	"mypodinfo/helpers"
	"mypodinfo/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo/v4"
)

// Bridge frame types.
const (
	FrameRegister   = "register"
	FrameUnregister = "unregister"
	FramePublish    = "publish"
	FrameSend       = "send"
	FramePing       = "ping"
	FrameRec        = "rec"
	FramePong       = "pong"
	FrameErr        = "err"
)

// Bridge error bodies.
const (
	bridgeErrAccessDenied   = "access_denied"
	bridgeErrInvalidFrame   = "invalid_frame"
	bridgeErrMissingAddress = "missing_address"
	bridgeErrUnknownType    = "unknown_type"
	bridgeErrBusFailure     = "bus_failure"
)

// BridgeFrame is one JSON text frame exchanged with a bridge client.
type BridgeFrame struct {
	Type    string          `json:"type"`
	Address string          `json:"address,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"`
}

// BridgeOptions lists the addresses a client may use. Each entry is a regular expression
// matched against the whole address; an empty list permits nothing.
type BridgeOptions struct {
	// InboundPermitted are the addresses clients may publish/send to.
	InboundPermitted []string
	// OutboundPermitted are the addresses clients may register on.
	OutboundPermitted []string
}

// DefaultBridgeOptions permits every address in both directions.
func DefaultBridgeOptions() BridgeOptions {
	return BridgeOptions{
		InboundPermitted:  []string{".*"},
		OutboundPermitted: []string{".*"},
	}
}

// EventBusBridge exposes the event bus to browsers over a websocket.
type EventBusBridge struct {
	bus      interfaces.EventBus
	inbound  []*regexp.Regexp
	outbound []*regexp.Regexp
	logger   log.Logger
}

// NewEventBusBridge creates a bridge. Returns an error when a permitted pattern does not compile.
func NewEventBusBridge(bus interfaces.EventBus, options BridgeOptions, logger log.Logger) (*EventBusBridge, error) {
	inbound, err := compileAddressPatterns(options.InboundPermitted)
	if err != nil {
		return nil, fmt.Errorf("inbound permitted: %w", err)
	}
	outbound, err := compileAddressPatterns(options.OutboundPermitted)
	if err != nil {
		return nil, fmt.Errorf("outbound permitted: %w", err)
	}

	return &EventBusBridge{
		bus:      helpers.NilPanic(bus, "handlers.eventbus_bridge.go: bus is required"),
		inbound:  inbound,
		outbound: outbound,
		logger:   log.WithPrefix(helpers.NilPanic(logger, "handlers.eventbus_bridge.go: logger is required"), "component", "EventBusBridge"),
	}, nil
}

func compileAddressPatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func permitted(patterns []*regexp.Regexp, address string) bool {
	for _, re := range patterns {
		if re.MatchString(address) {
			return true
		}
	}
	return false
}

// Handle (GET /api/eventbus) upgrades the connection and serves bridge frames until the client goes away.
func (b *EventBusBridge) Handle(ectx echo.Context) error {
	conn, _, _, err := ws.UpgradeHTTP(ectx.Request(), ectx.Response())
	if err != nil {
		// The upgrader already answered the client on the hijacked connection.
		level.Debug(b.logger).Log("msg", "Websocket upgrade failed", "err", err)
		if conn != nil {
			_ = conn.Close()
		}
		return nil
	}

	b.serve(conn)
	return nil
}

// bridgeConn serializes writes of the reader loop and the message pump.
type bridgeConn struct {
	mu   sync.Mutex
	conn net.Conn
}

func (c *bridgeConn) write(frame BridgeFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return wsutil.WriteServerMessage(c.conn, ws.OpText, data)
}

func (b *EventBusBridge) serve(conn net.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &bridgeConn{conn: conn}
	listener := b.bus.Listen()

	pumpDone := make(chan struct{})
	go func() {
		defer close(pumpDone)
		for msg := range listener.Messages() {
			frame := BridgeFrame{Type: FrameRec, Address: msg.Address, Body: asJSON(msg.Body)}
			if err := out.write(frame); err != nil {
				level.Debug(b.logger).Log("msg", "Failed to forward bus message", "err", err)
			}
		}
	}()

	defer func() {
		if err := listener.Close(); err != nil {
			level.Warn(b.logger).Log("msg", "Failed to close bus listener", "err", err)
		}
		<-pumpDone
		_ = conn.Close()
	}()

	for {
		data, _, err := wsutil.ReadClientData(conn)
		if err != nil {
			level.Debug(b.logger).Log("msg", "Bridge connection closed", "err", err)
			return
		}

		if reply, ok := b.handleFrame(ctx, listener, data); ok {
			if err := out.write(reply); err != nil {
				level.Debug(b.logger).Log("msg", "Failed to answer bridge frame", "err", err)
				return
			}
		}
	}
}

// handleFrame applies one client frame and returns the reply to send, if any.
func (b *EventBusBridge) handleFrame(ctx context.Context, listener interfaces.BusListener, data []byte) (BridgeFrame, bool) {
	var frame BridgeFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return errFrame(bridgeErrInvalidFrame), true
	}

	switch frame.Type {
	case FramePing:
		return BridgeFrame{Type: FramePong}, true
	case FrameRegister, FrameUnregister:
		if frame.Address == "" {
			return errFrame(bridgeErrMissingAddress), true
		}
		if !permitted(b.outbound, frame.Address) {
			return errFrame(bridgeErrAccessDenied), true
		}
		var err error
		if frame.Type == FrameRegister {
			err = listener.Register(ctx, frame.Address)
		} else {
			err = listener.Unregister(ctx, frame.Address)
		}
		if err != nil {
			level.Warn(b.logger).Log("msg", "Bridge "+frame.Type+" failed", "address", frame.Address, "err", err)
			return errFrame(bridgeErrBusFailure), true
		}
		return BridgeFrame{}, false
	case FramePublish, FrameSend:
		if frame.Address == "" {
			return errFrame(bridgeErrMissingAddress), true
		}
		if !permitted(b.inbound, frame.Address) {
			return errFrame(bridgeErrAccessDenied), true
		}
		if err := b.bus.Publish(ctx, frame.Address, frame.Body); err != nil {
			level.Warn(b.logger).Log("msg", "Bridge publish failed", "address", frame.Address, "err", err)
			return errFrame(bridgeErrBusFailure), true
		}
		return BridgeFrame{}, false
	default:
		return errFrame(bridgeErrUnknownType), true
	}
}

func errFrame(reason string) BridgeFrame {
	body, _ := json.Marshal(reason)
	return BridgeFrame{Type: FrameErr, Body: body}
}

// asJSON passes JSON bodies through and quotes anything else as a JSON string.
func asJSON(body []byte) json.RawMessage {
	if len(body) > 0 && json.Valid(body) {
		return body
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
