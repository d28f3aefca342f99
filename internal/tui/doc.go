// Package tui implements the full-screen terminal front end of cdterm.
//
// The model drives a terminal.Controller the same way the web page does,
// with Bubble Tea standing in for the browser. Navigation does not leave a
// page; the chosen destination is recorded and the program exits so the
// caller can print or open it.
//
// # Screens
//
//   - Intro: the introduction log, dimmed after IntroDelay and removed after
//     FadeDelay, at which point the yes/no question is asked
//   - Terminal: transcript, choice list, Tab hint and the input field
//   - Leaving: the destination, shown for the last frame before exit
//
// # Input
//
// Enter, Tab, Up and Down are forwarded to the controller with the current
// input field contents. Every other key edits the input field. Choice
// entries are bubblezone click zones; a left click selects and confirms
// the entry under the pointer. Esc and Ctrl+C quit.
//
// # Usage
//
//	dest, err := tui.Run(tui.Options{
//	    Intro:      true,
//	    IntroDelay: 800 * time.Millisecond,
//	    FadeDelay:  400 * time.Millisecond,
//	    IntroLines: config.DefaultIntroLines,
//	})
package tui
