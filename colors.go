// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

// ANSI colors for plain terminal output, set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

// ColorScheme holds the dashboard colors.
type ColorScheme struct {
	Primary     ui.Color
	Accent      ui.Color
	Success     ui.Color
	OnPrimary   ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
	Bars        []ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// themeHint looks for "dark" or "light" in a theme variable.
func themeHint(name string) TerminalMode {
	theme := strings.ToLower(os.Getenv(name))
	switch {
	case strings.Contains(theme, "dark"):
		return TerminalModeDark
	case strings.Contains(theme, "light"):
		return TerminalModeLight
	}
	return TerminalModeUnknown
}

// detectTerminalMode guesses whether the terminal background is light or dark
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if mode := themeHint(name); mode != TerminalModeUnknown {
			return mode
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(4),
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(2),
		OnPrimary:   ui.ColorWhite,
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.ColorBlack,
		TextMuted:   ui.Color(240),
		Bars:        []ui.Color{ui.Color(4), ui.Color(2), ui.ColorMagenta, ui.Color(6)},
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(6),
		Accent:      ui.Color(205),
		Success:     ui.Color(46),
		OnPrimary:   ui.ColorBlack,
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
		Bars:        []ui.Color{ui.Color(14), ui.Color(10), ui.Color(13), ui.Color(11)},
	}
}

// InitializeColors detects terminal mode and sets up both the dashboard
// scheme and the ANSI colors.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
		Green, Info, Warning, Error = "\033[32m", "\033[34m", "\033[33m", "\033[31m"
	} else {
		currentColorScheme = createDarkColorScheme()
		Green, Info, Warning, Error = "\033[92m", "\033[96m", "\033[93m", "\033[91m"
	}
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	return ui.NewStyle(GetColorScheme().Text)
}

func StyleTextMuted() ui.Style {
	return ui.NewStyle(GetColorScheme().TextMuted)
}

func StylePrimary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.OnPrimary, scheme.Primary)
}

// lipglossColor converts a 256-color palette index for the menu styles.
func lipglossColor(c ui.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}
