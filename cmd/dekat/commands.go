package main

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/screen"
)

// controller is the part of the screen the keyboard drives.
type controller interface {
	Refresh()
	LongPress(item domain.DataItem)
	ConfirmDelete()
	CancelDelete()
	Snapshot() screen.State
}

// readCommands maps input lines to screen actions until quit or EOF:
//
//	r      refresh
//	h <n>  hold item n (1-based) to ask for deletion
//	y      confirm deletion
//	n      cancel deletion
//	q      quit
func readCommands(r io.Reader, ctl controller, quit func(), logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !dispatch(scanner.Text(), ctl, logger) {
			quit()
			return
		}
	}
}

// dispatch runs one command and reports whether to keep reading.
func dispatch(line string, ctl controller, logger *slog.Logger) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "r":
		ctl.Refresh()
	case "h":
		if len(fields) != 2 {
			logger.Warn("usage: h <item number>")
			return true
		}
		n, err := strconv.Atoi(fields[1])
		items := ctl.Snapshot().Items
		if err != nil || n < 1 || n > len(items) {
			logger.Warn("no such item", "item", fields[1])
			return true
		}
		ctl.LongPress(items[n-1])
	case "y":
		ctl.ConfirmDelete()
	case "n":
		ctl.CancelDelete()
	case "q":
		return false
	default:
		logger.Warn("unknown command", "command", fields[0])
	}
	return true
}
