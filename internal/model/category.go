package model

import (
	"regexp"
	"strings"
)

// The category sets are closed on purpose: the aggregation logic groups by
// category and assumes a bounded set, so free-form strings are rejected at
// the boundary instead of leaking into reports.

var ExpenseCategories = []string{
	"Food", "Transport", "Data", "Shopping",
	"Entertainment", "Bills", "Others",
}

var IncomeCategories = []string{
	"Allowance", "Salary", "Bonus", "Others",
}

var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

var ScheduleTypes = []string{"Lecture", "Lab", "Exam", "Other"}

func ValidCategory(t TransactionType, category string) bool {
	if t == TypeIncome {
		return contains(IncomeCategories, category)
	}
	return contains(ExpenseCategories, category)
}

func ValidWeekday(day string) bool {
	return contains(Weekdays, day)
}

func ValidScheduleType(t string) bool {
	return contains(ScheduleTypes, t)
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a wall-clock "HH:MM" string. Schedule
// entries are sorted lexicographically by this field, which only works when
// the format is zero-padded 24h.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// CategoryPrompt joins the expense categories for injection into the chat
// assistant's system prompt.
func CategoryPrompt() string {
	return strings.Join(ExpenseCategories, ", ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
