package widget

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lojasmm/inlinekb/keyboard"
)

const (
	calendarWeeks  = 6
	dayTokenLayout = "2006/01/02"
)

// CalendarTokens are the callback tokens a Calendar renders.
type CalendarTokens struct {
	DayPrefix     string
	WeekdayPrefix string
	PreviousYear  string
	NextYear      string
	PreviousMonth string
	NextMonth     string
}

func DefaultCalendarTokens() CalendarTokens {
	return CalendarTokens{
		DayPrefix:     "d_",
		WeekdayPrefix: "w_",
		PreviousYear:  "py",
		NextYear:      "ny",
		PreviousMonth: "pm",
		NextMonth:     "nm",
	}
}

// Calendar shows one month and lets the user move between months and years.
type Calendar struct {
	year  int
	month time.Month
}

// NewCalendar points at the current month in local time.
func NewCalendar() *Calendar {
	c := &Calendar{}
	c.SetCurrentMonth(time.Now())
	return c
}

// CalendarAt points at the given month. It panics if month is not in 1..12.
func CalendarAt(year int, month time.Month) *Calendar {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("widget: month %d out of range [1,12]", month))
	}
	return &Calendar{year: year, month: month}
}

func (c *Calendar) Year() int { return c.year }

func (c *Calendar) Month() time.Month { return c.month }

// SetCurrentMonth points the calendar at now's month.
func (c *Calendar) SetCurrentMonth(now time.Time) {
	c.year, c.month = now.Year(), now.Month()
}

func (c *Calendar) SetPreviousYear() { c.year-- }

func (c *Calendar) SetNextYear() { c.year++ }

func (c *Calendar) SetPreviousMonth() {
	if c.month == time.January {
		c.month = time.December
		c.year--
		return
	}
	c.month--
}

func (c *Calendar) SetNextMonth() {
	if c.month == time.December {
		c.month = time.January
		c.year++
		return
	}
	c.month++
}

func (c *Calendar) FirstDay() time.Time {
	return time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.UTC)
}

func (c *Calendar) LastDay() time.Time {
	return time.Date(c.year, c.month+1, 0, 0, 0, 0, 0, time.UTC)
}

func (c *Calendar) DaysInMonth() int {
	return c.LastDay().Day()
}

// Size is fixed: a header, a weekday row and six weeks, seven columns wide.
func (c *Calendar) Size() keyboard.Size {
	return keyboard.NewSize(2+calendarWeeks, 7)
}

// Render draws the header, the weekday names and the days of the month.
// Weeks start on Monday.
func (c *Calendar) Render(tokens CalendarTokens, styles *Styles) keyboard.Keyboard {
	st := styles.Calendar
	noop := keyboard.Placeholder(styles.Common.EmptyCellIcon)

	kb := make(keyboard.Keyboard, 0, 2+calendarWeeks)
	kb = append(kb, []keyboard.Cell{
		{Label: st.PreviousMonthIcon, Token: tokens.PreviousMonth},
		keyboard.Placeholder(st.Months[c.month-1]),
		{Label: st.NextMonthIcon, Token: tokens.NextMonth},
		noop,
		{Label: st.PreviousYearIcon, Token: tokens.PreviousYear},
		keyboard.Placeholder(strconv.Itoa(c.year)),
		{Label: st.NextYearIcon, Token: tokens.NextYear},
	})

	weekdays := make([]keyboard.Cell, 7)
	for i, name := range st.DaysOfWeek {
		weekdays[i] = keyboard.Cell{Label: name, Token: tokens.WeekdayPrefix + strconv.Itoa(i)}
	}
	kb = append(kb, weekdays)

	days := make([]keyboard.Cell, 0, 7*calendarWeeks)
	for i := 0; i < mondayOffset(c.FirstDay().Weekday()); i++ {
		days = append(days, noop)
	}
	for d := 1; d <= c.DaysInMonth(); d++ {
		date := time.Date(c.year, c.month, d, 0, 0, 0, 0, time.UTC)
		days = append(days, keyboard.Cell{Label: strconv.Itoa(d), Token: tokens.DayPrefix + date.Format(dayTokenLayout)})
	}
	for len(days) < 7*calendarWeeks {
		days = append(days, noop)
	}
	return append(kb, keyboard.Chunk(days, 7, noop)...)
}

// ParseDay recovers the date from a day token.
func ParseDay(data, prefix string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(dayTokenLayout, rest)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseWeekday recovers the weekday from a weekday token. Index 0 is Monday.
func ParseWeekday(data, prefix string) (time.Weekday, bool) {
	rest, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || i > 6 {
		return 0, false
	}
	return time.Weekday((i + 1) % 7), true
}

func mondayOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}

type calendarJSON struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (c *Calendar) MarshalJSON() ([]byte, error) {
	return json.Marshal(calendarJSON{Year: c.year, Month: int(c.month)})
}

func (c *Calendar) UnmarshalJSON(data []byte) error {
	var v calendarJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Month < 1 || v.Month > 12 {
		return fmt.Errorf("calendar: month %d out of range [1,12]", v.Month)
	}
	c.year, c.month = v.Year, time.Month(v.Month)
	return nil
}
