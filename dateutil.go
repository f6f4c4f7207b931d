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
// Report timestamps use the memorable layouts from https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"strings"
	"time"
)

/*
	Formats:

	MMM  - month (Jan)
	DD   - day (02)
	DDDD - day (Monday)
	YYYY - year (2006)
	hh   - hours (15)
	mm   - minutes (04)
	ss   - seconds (05)
*/

type p struct{ find, subst string }

// Longer placeholders come first so "DDDD" is not eaten by "DD".
var placeholder = []p{
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMM", "Jan"},
	{"YYYY", "2006"},
	{"DDDD", "Monday"},
	{"DD", "02"},
}

const dateTimeFormat = "DDDD, DD MMM YYYY hh:mm:ss"

func replace(in string) (out string) {
	out = in
	for _, ph := range placeholder {
		out = strings.Replace(out, ph.find, ph.subst, -1)
	}
	return
}

// FormatDateTime formats the given date for the run report footer
func FormatDateTime(date time.Time) string {
	return date.Format(replace(dateTimeFormat))
}
