// Package terminal implements the fake-terminal input controller.
//
// The controller is a small state machine driven by key events. It knows
// nothing about how it is displayed: front ends forward Enter, Tab and the
// arrow keys together with the current input field contents, and apply the
// returned Outcome (new input text, appended transcript lines, hint).
//
// # States
//
//	init ──Boot──▶ yes/no ──yes/y──▶ choice
//	                  │
//	                  └────no/n────▶ manual
//
// State is a sealed interface with one struct per variant, so a type switch
// over InitState, YesNoState, ChoiceState and ManualState is exhaustive.
// Events that make no sense in the current state (arrow keys outside the
// choice list, Tab outside manual mode) are rejected with Handled unset.
//
// # Commands
//
// In manual mode, and for non-empty lines in choice mode, Enter runs a
// command:
//
//	cd <name>   resolve name and navigate ("changing directory to name/")
//	help        print usage
//
// Anything else prints "command not found: ...". Nothing here returns an
// error; unrecognized input only ever produces a transcript line.
//
// # Completion
//
// Tab in manual mode completes "cd <prefix>" when exactly one destination
// starts with the prefix, and always shows the folder hint line.
package terminal
