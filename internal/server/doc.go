// Package server serves the static site and its terminal widgets.
//
// Every page of the site carries a terminal widget. The page script opens a
// WebSocket to /terminal, forwards key presses from the input field and
// applies the frames it receives; all terminal behaviour runs here, in a
// terminal.Controller owned by that connection.
//
// # Wire Frames
//
// Frames are JSON text messages.
//
// Page to server:
//
//	{"type":"hello","intro":true}
//	{"type":"key","key":"Enter","input":"cd works"}
//	{"type":"select","index":2}
//
// Server to page:
//
//	{"type":"state","mode":"manual","lines":[">>> changing directory to works/"],"input":"","show_hint":false,"prevent_default":false,"highlight":-1}
//	{"type":"intro","phase":"fade"}
//	{"type":"navigate","location":"works.html"}
//
// A state frame follows every handled frame. A navigate frame, when an event
// leads to one, comes right after that event's state frame.
//
// # Introduction
//
// A hello with intro set starts the introduction: after Timing.IntroDelay
// the server sends the "fade" phase, after Timing.FadeDelay the "hidden"
// phase followed by the yes/no prompt. Without intro the prompt is sent
// immediately. Closing the connection is the only way to cancel the delay.
//
// # Ordering
//
// Each session has a single loop that applies page frames and timer
// expirations in the order they arrive. The controller is never shared
// between goroutines, so no locking is involved.
//
// # Usage Example
//
//	srv, err := server.New(&server.Config{
//	    Host:      "0.0.0.0",
//	    Port:      8080,
//	    SiteDir:   "./site",
//	    Advertise: true,
//	    Instance:  "cdterm",
//	    Timing:    server.Timing{IntroDelay: 800 * time.Millisecond, FadeDelay: 400 * time.Millisecond},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(); err != nil { // blocks until SIGINT/SIGTERM
//	    log.Fatal(err)
//	}
package server
