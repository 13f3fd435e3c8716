// seehuhn.de/go/dotclock - a dot-matrix watchface renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package face

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/dotclock/weather"
)

// FormatDate returns the lowercase abbreviated weekday followed by the
// day of the month, for example "sun 18".
func FormatDate(t time.Time) string {
	return strings.ToLower(t.Format("Mon")) + " " + strconv.Itoa(t.Day())
}

// FormatSteps returns the step count as a decimal number.  The result is
// empty if n is not positive.
func FormatSteps(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// FormatWeather returns the text for a weather report.  Temperatures are
// given in Celsius and are converted if fahrenheit is set.
func FormatWeather(r weather.Report, fahrenheit bool) string {
	switch r.Condition {
	case weather.Error:
		return "ERROR"
	case weather.NoGPS:
		return "NO GPS"
	case weather.Loading:
		return "LOADING"
	}

	// 0°C is a valid reading only for a clear sky; otherwise it is
	// what an unset report looks like.
	if r.Temperature == 0 && r.Condition != weather.Clear {
		return "--"
	}

	t, unit := r.Temperature, "C"
	if fahrenheit {
		t, unit = t*9/5+32, "F"
	}
	return fmt.Sprintf("%d°%s %s", t, unit, r.Condition)
}

// DisplayHour converts an hour of the day (0-23) to the value shown on the
// face.  In 12-hour mode, midnight and noon are shown as 12.
func DisplayHour(hour int, use24H bool) int {
	if use24H {
		return hour
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return hour
}

// Meridiem returns "AM" or "PM" for an hour of the day.
func Meridiem(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}
