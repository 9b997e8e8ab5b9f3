// Package live serves a browser preview of an in-progress render.
// Connected clients receive one status message plus a downscaled PNG
// per completed frame over a websocket.
package live

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/image/draw"
)

//go:embed index.html
var indexHTML []byte

// Previews are scaled to this width; height follows the frame's
// aspect ratio.
const previewWidth = 480

const writeTimeout = 5 * time.Second

// Server broadcasts finished frames to connected websocket clients.
// The zero value is not usable; call NewServer.
type Server struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewServer() *Server {
	return &Server{conns: make(map[*websocket.Conn]struct{})}
}

// Start serves the preview page and the /ws endpoint on addr.
// Serving continues in the background for the lifetime of the process;
// the render run does not wait for clients.
func (s *Server) Start(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.websocketHandler)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("preview listening on http://localhost%s", addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("preview server: %v", err)
		}
	}()
}

// websocketHandler upgrades the connection and registers it for
// broadcasts. Clients never send application data; CloseRead handles
// control frames and tells us when the peer goes away.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}

	ctx := c.CloseRead(context.Background())

	s.mu.Lock()
	s.conns[c] = struct{}{}
	n := len(s.conns)
	s.mu.Unlock()
	log.Printf("preview clients: %d", n)

	go func() {
		<-ctx.Done()
		s.drop(c)
	}()
}

func (s *Server) drop(c *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conns[c]; !ok {
		return
	}
	delete(s.conns, c)
	c.CloseNow()
}

// Broadcast sends the frame's status and a downscaled PNG preview to
// every connected client. Clients that fail a write are dropped; a
// broadcast never fails the render.
func (s *Server) Broadcast(index, total int, img image.Image) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaleToPreview(img)); err != nil {
		log.Printf("preview encode: %v", err)
		return
	}
	status := fmt.Appendf(nil, `{"frame":%d,"total":%d}`, index+1, total)

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.conns {
		if err := c.Write(ctx, websocket.MessageText, status); err == nil {
			err = c.Write(ctx, websocket.MessageBinary, buf.Bytes())
			if err == nil {
				continue
			}
		}
		delete(s.conns, c)
		c.CloseNow()
	}
}

// scaleToPreview downscales src to previewWidth with bilinear
// filtering. Frames that already fit are copied as-is.
func scaleToPreview(src image.Image) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	if w > previewWidth {
		w = previewWidth
	}
	h := b.Dy() * w / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
