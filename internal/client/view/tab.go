package view

import (
	"fmt"
	"strings"
)

// Tab names one screen of the interface.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabClassify  Tab = "classify"
	TabEmails    Tab = "emails"
	TabUpload    Tab = "upload"
	TabAdmin     Tab = "admin"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabDashboard, TabClassify, TabEmails, TabUpload, TabAdmin}

// ParseTab resolves a tab name case-insensitively.
func ParseTab(name string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Tabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// Mode is the top-level state of the interface.
type Mode int

const (
	// ModeLoggedOut renders only the login and registration surface.
	ModeLoggedOut Mode = iota
	ModeTabs
)

func (m Mode) String() string {
	if m == ModeTabs {
		return "tabs"
	}
	return "logged-out"
}
