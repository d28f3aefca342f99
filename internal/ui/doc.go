// Package ui renders the non-interactive output of the cdterm commands.
//
// Commands print a Header describing what they are about to do, then a
// Result box. Both take ordered Fields so the output is stable between runs.
// Everything goes through a Printer, which sizes boxes to the terminal and
// can write to any io.Writer.
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Terminal server", "cdterm serve",
//	    ui.Field{Key: "Address", Value: addr},
//	    ui.Field{Key: "Site", Value: siteDir},
//	)
//
// Logging is controlled separately via the CDTERM_LOG_LEVEL environment
// variable. When it is unset, zap stays silent and only this curated output
// reaches the terminal.
package ui
