package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"TickGate/internal/quote"
	"TickGate/internal/subscription"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func startPushServer(t *testing.T, rec *subscription.Record, heartbeat time.Duration, rateCeiling int) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		sess := NewPushSession(conn, rec, heartbeat, rateCeiling, metrics, zerolog.Nop())
		sess.Run(r.Context())
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPushSessionDeliversTickFrames(t *testing.T) {
	registry := subscription.NewRegistry(10, 100)
	rec, err := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	q := rec.Queue()
	for i := 1; i <= 3; i++ {
		q.Push(quote.Tick{Symbol: "600519.SH", Price: float64(i), Timestamp: time.Now()})
	}

	conn := startPushServer(t, rec, time.Second, 0)
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))

	for want := 1; want <= 3; want++ {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read frame %d: %v", want, err)
		}

		var frame struct {
			Type string     `json:"type"`
			Tick quote.Tick `json:"tick"`
		}
		if err := json.Unmarshal(payload, &frame); err != nil {
			t.Fatalf("decode frame %d: %v", want, err)
		}
		if frame.Type != "tick" {
			t.Errorf("frame type = %q, want tick", frame.Type)
		}
		if frame.Tick.Price != float64(want) {
			t.Errorf("frame %d price = %f, want %d", want, frame.Tick.Price, want)
		}
	}
}

func TestPushSessionClosesWhenQueueCloses(t *testing.T) {
	registry := subscription.NewRegistry(10, 100)
	rec, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	q := rec.Queue()

	conn := startPushServer(t, rec, time.Second, 0)
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))

	q.Close()

	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("expected close, got a frame")
	}
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("close err = %v, want normal closure", err)
	}
}

func TestPushSessionSendsHeartbeatPings(t *testing.T) {
	registry := subscription.NewRegistry(10, 100)
	rec, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)

	conn := startPushServer(t, rec, 30*time.Millisecond, 0)

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})

	// ReadMessage drives control-frame handlers; it only returns on a data
	// frame or error, so run it in the background.
	go func() {
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		conn.ReadMessage()
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("no heartbeat ping received")
	}
}

func TestPushSessionRateCeilingCoalesces(t *testing.T) {
	registry := subscription.NewRegistry(10, 1000)
	rec, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)

	q := rec.Queue()
	// Burst far above a 5/s ceiling.
	for i := 1; i <= 100; i++ {
		q.Push(quote.Tick{Symbol: "600519.SH", Price: float64(i), Timestamp: time.Now()})
	}
	q.Close()

	conn := startPushServer(t, rec, time.Second, 5)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var prices []float64
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var frame struct {
			Tick quote.Tick `json:"tick"`
		}
		if err := json.Unmarshal(payload, &frame); err != nil {
			t.Fatalf("decode: %v", err)
		}
		prices = append(prices, frame.Tick.Price)
	}

	if len(prices) == 0 {
		t.Fatal("no frames delivered")
	}
	if len(prices) >= 100 {
		t.Errorf("delivered %d frames, want far fewer than the 100 pushed", len(prices))
	}
	if got := prices[len(prices)-1]; got != 100 {
		t.Errorf("last delivered price = %f, want the freshest tick (100)", got)
	}
	for i := 1; i < len(prices); i++ {
		if prices[i] <= prices[i-1] {
			t.Errorf("frames out of order: %v", prices)
			break
		}
	}
}
