// Package remote receives key presses from remote keyboards (phones,
// companion apps) over WebSocket and feeds them into the keyboard resource.
//
// Each connection gets a uuid sender id, announced to the client in a
// "hello" message. Clients then send {"t":"down"|"up","k":key,"c":char}.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/younwookim/impala/internal/application/input"
)

// Message types
const (
	TypeHello = "hello"
	TypeDown  = "down"
	TypeUp    = "up"
)

// ClientMessage is the JSON structure received from remote keyboards.
type ClientMessage struct {
	Type string `json:"t"`
	Key  int    `json:"k,omitempty"`
	Char string `json:"c,omitempty"`
}

// ServerMessage is the JSON structure sent to remote keyboards.
type ServerMessage struct {
	Type string `json:"t"`
	ID   string `json:"id,omitempty"`
}

// Sink receives remote keyboard activity. *input.Keyboard implements it;
// every method must be safe to call from any goroutine.
type Sink interface {
	RemoteConnected(sender string)
	RemoteKeyDown(sender string, key input.Key, char rune)
	RemoteKeyUp(sender string, key input.Key, char rune)
	RemoteClosed(sender string)
}

// Receiver is an http.Handler accepting remote keyboard connections.
type Receiver struct {
	sink    Sink
	origins []string

	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

// NewReceiver creates a receiver feeding sink. Browser clients are accepted
// only from the receiver's own host or from an origin host matching one of
// originPatterns (glob, e.g. "*.example.com"). Clients that send
// no Origin header, such as native apps, are always accepted.
func NewReceiver(sink Sink, originPatterns ...string) *Receiver {
	return &Receiver{
		sink:    sink,
		origins: originPatterns,
		conns:   make(map[string]*websocket.Conn),
	}
}

// ServeHTTP upgrades the request and reads key messages until the client
// goes away.
func (r *Receiver) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{OriginPatterns: r.origins})
	if err != nil {
		log.Printf("[Remote] accept error: %v", err)
		return
	}
	defer func() { _ = conn.CloseNow() }()

	id := uuid.New().String()
	r.register(id, conn)
	defer r.unregister(id)

	ctx := req.Context()
	if err := wsjson.Write(ctx, conn, ServerMessage{Type: TypeHello, ID: id}); err != nil {
		log.Printf("[Remote] %s hello failed: %v", id, err)
		return
	}

	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
				log.Printf("[Remote] %s read error: %v", id, err)
			}
			return
		}
		r.handle(id, msg)
	}
}

func (r *Receiver) handle(id string, msg ClientMessage) {
	char, _ := utf8.DecodeRuneInString(msg.Char)
	if char == utf8.RuneError {
		char = 0
	}
	key := input.Key(msg.Key)
	if key < input.KeyUnknown || key > input.Key9 {
		key = input.KeyUnknown
	}

	switch msg.Type {
	case TypeDown:
		r.sink.RemoteKeyDown(id, key, char)
	case TypeUp:
		r.sink.RemoteKeyUp(id, key, char)
	default:
		log.Printf("[Remote] %s unknown message type %q", id, msg.Type)
	}
}

func (r *Receiver) register(id string, conn *websocket.Conn) {
	r.mu.Lock()
	r.conns[id] = conn
	r.mu.Unlock()

	log.Printf("[Remote] keyboard %s connected", id)
	r.sink.RemoteConnected(id)
}

func (r *Receiver) unregister(id string) {
	r.mu.Lock()
	_, ok := r.conns[id]
	delete(r.conns, id)
	r.mu.Unlock()

	if ok {
		log.Printf("[Remote] keyboard %s closed", id)
		r.sink.RemoteClosed(id)
	}
}

// Count returns the number of connected remote keyboards.
func (r *Receiver) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// Close disconnects every remote keyboard.
func (r *Receiver) Close() error {
	r.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(r.conns))
	for _, c := range r.conns {
		conns = append(conns, c)
	}
	r.mu.Unlock()

	for _, c := range conns {
		_ = c.Close(websocket.StatusGoingAway, "game closed")
	}
	return nil
}

// ListenAndServe serves the receiver on addr until ctx is done.
func (r *Receiver) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/keyboard", r)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Remote] listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("remote receiver: %w", err)
	case <-ctx.Done():
	}

	_ = r.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("remote receiver shutdown: %w", err)
	}
	return nil
}
