package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muurk/cdterm/internal/terminal"
)

// serverFrame is the union of every frame the server sends
type serverFrame struct {
	Type           string   `json:"type"`
	Mode           string   `json:"mode"`
	Lines          []string `json:"lines"`
	Input          string   `json:"input"`
	Hint           string   `json:"hint"`
	ShowHint       bool     `json:"show_hint"`
	PreventDefault bool     `json:"prevent_default"`
	Choices        []string `json:"choices"`
	Highlight      int      `json:"highlight"`
	Phase          string   `json:"phase"`
	Location       string   `json:"location"`
}

func newTestServer(t *testing.T, timing Timing) *httptest.Server {
	t.Helper()
	_, ts := newServerWithHandler(t, timing)
	return ts
}

func newServerWithHandler(t *testing.T, timing Timing) (*Server, *httptest.Server) {
	t.Helper()

	siteDir := t.TempDir()
	for _, page := range []string{"index.html", "works.html", "profile.html", "research.html", "contact.html"} {
		body := "<html><body>" + strings.TrimSuffix(page, ".html") + "</body></html>"
		if err := os.WriteFile(filepath.Join(siteDir, page), []byte(body), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", page, err)
		}
	}

	srv, err := New(&Config{SiteDir: siteDir, Timing: timing})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + TerminalPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, f ClientFrame) {
	t.Helper()
	if err := conn.WriteJSON(f); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
}

func recv(t *testing.T, conn *websocket.Conn) serverFrame {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	var f serverFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return f
}

func key(t *testing.T, conn *websocket.Conn, k terminal.Key, input string) serverFrame {
	t.Helper()
	send(t, conn, ClientFrame{Type: FrameKey, Key: k.String(), Input: input})
	return recv(t, conn)
}

// greet opens a session without the introduction and consumes the prompt
func greet(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	send(t, conn, ClientFrame{Type: FrameHello})
	f := recv(t, conn)
	if f.Type != FrameState || f.Mode != "yesno" {
		t.Fatalf("first frame = %+v, want yesno state", f)
	}
	if !reflect.DeepEqual(f.Lines, []string{">>> " + terminal.MsgQuestion}) {
		t.Fatalf("first frame lines = %v", f.Lines)
	}
}

func TestNewRejectsMissingSiteDir(t *testing.T) {
	_, err := New(&Config{SiteDir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("New() should fail for a missing site directory")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(&Config{SiteDir: file}); err == nil {
		t.Fatal("New() should fail when the site directory is a file")
	}
}

func TestServesStaticPages(t *testing.T) {
	ts := newTestServer(t, Timing{})

	resp, err := http.Get(ts.URL + "/works.html")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "works") {
		t.Errorf("body = %q", body)
	}

	missing, err := http.Get(ts.URL + "/bogus.html")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", missing.StatusCode)
	}
}

func TestTerminalRequiresUpgrade(t *testing.T) {
	ts := newTestServer(t, Timing{})

	resp, err := http.Get(ts.URL + TerminalPath)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestManualSessionNavigates(t *testing.T) {
	ts := newTestServer(t, Timing{})
	conn := dial(t, ts)
	greet(t, conn)

	f := key(t, conn, terminal.KeyEnter, "no")
	if f.Mode != "manual" {
		t.Fatalf("mode = %q, want manual", f.Mode)
	}
	if !reflect.DeepEqual(f.Lines, []string{">>> " + terminal.MsgManualMode}) {
		t.Errorf("lines = %v", f.Lines)
	}

	f = key(t, conn, terminal.KeyEnter, "cd bogus")
	if !reflect.DeepEqual(f.Lines, []string{">>> command not found: bogus"}) {
		t.Errorf("lines = %v", f.Lines)
	}

	f = key(t, conn, terminal.KeyEnter, "cd works")
	if !reflect.DeepEqual(f.Lines, []string{">>> changing directory to works/"}) {
		t.Errorf("lines = %v", f.Lines)
	}
	if f.Input != "" {
		t.Errorf("input = %q, want cleared", f.Input)
	}

	nav := recv(t, conn)
	if nav.Type != FrameNavigate || nav.Location != "works.html" {
		t.Errorf("frame = %+v, want navigate to works.html", nav)
	}
}

func TestTabCompletionOverWebSocket(t *testing.T) {
	ts := newTestServer(t, Timing{})
	conn := dial(t, ts)
	greet(t, conn)
	key(t, conn, terminal.KeyEnter, "n")

	f := key(t, conn, terminal.KeyTab, "cd wo")
	if f.Input != "cd works" {
		t.Errorf("input = %q, want %q", f.Input, "cd works")
	}
	if !f.PreventDefault || !f.ShowHint {
		t.Errorf("frame = %+v, want prevent_default and show_hint", f)
	}
	if f.Hint != "works/   profile/   research/   contact/" {
		t.Errorf("hint = %q", f.Hint)
	}
	if len(f.Lines) != 0 {
		t.Errorf("lines = %v, want none", f.Lines)
	}
}

func TestChoiceSession(t *testing.T) {
	ts := newTestServer(t, Timing{})
	conn := dial(t, ts)
	greet(t, conn)

	f := key(t, conn, terminal.KeyEnter, "yes")
	if f.Mode != "choice" || f.Highlight != 0 {
		t.Fatalf("frame = %+v, want choice mode with highlight 0", f)
	}
	want := []string{">>> cd works", ">>> cd profile", ">>> cd research", ">>> cd contact"}
	if !reflect.DeepEqual(f.Choices, want) {
		t.Errorf("choices = %v, want %v", f.Choices, want)
	}

	f = key(t, conn, terminal.KeyUp, "")
	if f.Highlight != 3 {
		t.Errorf("highlight = %d, want 3", f.Highlight)
	}

	key(t, conn, terminal.KeyEnter, "")
	nav := recv(t, conn)
	if nav.Location != "contact.html" {
		t.Errorf("location = %q, want contact.html", nav.Location)
	}

	send(t, conn, ClientFrame{Type: FrameSelect, Index: 1})
	recv(t, conn)
	nav = recv(t, conn)
	if nav.Location != "profile.html" {
		t.Errorf("location = %q, want profile.html", nav.Location)
	}
}

func TestIntroSequence(t *testing.T) {
	ts := newTestServer(t, Timing{IntroDelay: 10 * time.Millisecond, FadeDelay: 10 * time.Millisecond})
	conn := dial(t, ts)

	send(t, conn, ClientFrame{Type: FrameHello, Intro: true})

	f := recv(t, conn)
	if f.Type != FrameState || f.Mode != "init" || len(f.Lines) != 0 {
		t.Fatalf("frame = %+v, want empty init state", f)
	}

	f = recv(t, conn)
	if f.Type != FrameIntro || f.Phase != IntroFade {
		t.Fatalf("frame = %+v, want fade", f)
	}

	f = recv(t, conn)
	if f.Type != FrameIntro || f.Phase != IntroHidden {
		t.Fatalf("frame = %+v, want hidden", f)
	}

	f = recv(t, conn)
	if f.Mode != "yesno" || !reflect.DeepEqual(f.Lines, []string{">>> " + terminal.MsgQuestion}) {
		t.Fatalf("frame = %+v, want yes/no prompt", f)
	}
}

func TestMalformedAndUnknownFramesAreIgnored(t *testing.T) {
	ts := newTestServer(t, Timing{})
	conn := dial(t, ts)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	send(t, conn, ClientFrame{Type: "bogus"})
	send(t, conn, ClientFrame{Type: FrameKey, Key: "Escape"})

	// The session is still alive and answers the hello
	greet(t, conn)

	// A repeated hello is ignored; the next frame answers the key
	send(t, conn, ClientFrame{Type: FrameHello})
	f := key(t, conn, terminal.KeyEnter, "maybe")
	if !reflect.DeepEqual(f.Lines, []string{">>> " + terminal.MsgReprompt}) {
		t.Errorf("lines = %v", f.Lines)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	ts := newTestServer(t, Timing{})
	a := dial(t, ts)
	b := dial(t, ts)
	greet(t, a)
	greet(t, b)

	key(t, a, terminal.KeyEnter, "no")
	f := key(t, b, terminal.KeyEnter, "cd works")

	// b is still at the yes/no question
	if f.Mode != "yesno" || !reflect.DeepEqual(f.Lines, []string{">>> " + terminal.MsgReprompt}) {
		t.Errorf("frame = %+v", f)
	}
}

// waitForSessions polls until the server reports want open sessions
func waitForSessions(t *testing.T, srv *Server, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if srv.GetActiveSessions() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("GetActiveSessions() = %d, want %d", srv.GetActiveSessions(), want)
}

func TestActiveSessionCount(t *testing.T) {
	srv, ts := newServerWithHandler(t, Timing{})
	if got := srv.GetActiveSessions(); got != 0 {
		t.Fatalf("GetActiveSessions() = %d before any connection, want 0", got)
	}

	a := dial(t, ts)
	b := dial(t, ts)
	greet(t, a)
	greet(t, b)
	waitForSessions(t, srv, 2)

	if err := a.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")); err != nil {
		t.Fatalf("WriteMessage(close) error = %v", err)
	}
	_ = a.Close()
	waitForSessions(t, srv, 1)

	// The remaining session still works
	if f := key(t, b, terminal.KeyEnter, "no"); f.Mode != "manual" {
		t.Errorf("mode = %q, want manual", f.Mode)
	}
}

func TestShutdownClosesSessions(t *testing.T) {
	srv, ts := newServerWithHandler(t, Timing{})
	conn := dial(t, ts)
	greet(t, conn)
	waitForSessions(t, srv, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if got := srv.GetActiveSessions(); got != 0 {
		t.Errorf("GetActiveSessions() = %d after shutdown, want 0", got)
	}

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection should be closed after shutdown")
	}
}
