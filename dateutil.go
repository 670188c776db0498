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

// dateutil.go
// The memorable layout tokens follow https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"strings"
	"time"
)

// layoutTokens turns the tokens below into Go reference-time fragments.
// At each position the first matching token wins, so longer tokens are
// listed before their prefixes.
//
//	DDDD - day (Monday)     DDD - day (Mon)     DD - day (02)
//	MMM  - month (Jan)      YYYY - year (2006)
//	hh   - hours (15)       mm  - minutes (04)  ss - seconds (05)
var layoutTokens = strings.NewReplacer(
	"DDDD", "Monday",
	"DDD", "Mon",
	"DD", "02",
	"MMM", "Jan",
	"YYYY", "2006",
	"hh", "15",
	"mm", "04",
	"ss", "05",
)

const (
	// status line of the menu
	timeLayout = "hh:mm:ss"
	// load time on the dashboard
	dateTimeLayout = "DDDD, DD MMM YYYY hh:mm:ss"
	// dashboard clock
	clockLayout = "DDD DD MMM hh:mm:ss"
)

func formatDate(layout string, date time.Time) string {
	return date.Format(layoutTokens.Replace(layout))
}

// FormatTime formats the time of day of date.
func FormatTime(date time.Time) string {
	return formatDate(timeLayout, date)
}

// FormatDateTime formats date with its weekday.
func FormatDateTime(date time.Time) string {
	return formatDate(dateTimeLayout, date)
}

// FormatClock formats the dashboard clock.
func FormatClock(date time.Time) string {
	return formatDate(clockLayout, date)
}
