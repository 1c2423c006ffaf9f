package services

import (
	"errors"
	"strings"
	"time"
)

const (
	MinCycleLength  = 20
	MaxCycleLength  = 45
	MinPeriodLength = 2
	MaxPeriodLength = 10
)

var (
	ErrCycleLengthOutOfRange  = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange = errors.New("period length out of range")
	ErrPeriodStartDateInvalid = errors.New("period start date invalid")
)

// CycleSettingsPatch is a per-field partial update. Nil pointers mean the
// field was absent from the request and must be left unchanged.
type CycleSettingsPatch struct {
	CycleLength     *int
	PeriodLength    *int
	PeriodStartDate *time.Time
}

// CycleSettingsPatchInput carries raw request values with explicit
// presence flags, before validation.
type CycleSettingsPatchInput struct {
	CycleLength        *int
	PeriodLength       *int
	PeriodStartDateRaw *string
}

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}

// ValidateCycleSettingsPatch checks each present field independently and
// returns a typed patch. No field is validated or touched unless present,
// so a rejected update never partially applies.
func ValidateCycleSettingsPatch(input CycleSettingsPatchInput, location *time.Location) (CycleSettingsPatch, error) {
	patch := CycleSettingsPatch{}

	if input.CycleLength != nil {
		if !IsValidCycleLength(*input.CycleLength) {
			return CycleSettingsPatch{}, ErrCycleLengthOutOfRange
		}
		value := *input.CycleLength
		patch.CycleLength = &value
	}

	if input.PeriodLength != nil {
		if !IsValidPeriodLength(*input.PeriodLength) {
			return CycleSettingsPatch{}, ErrPeriodLengthOutOfRange
		}
		value := *input.PeriodLength
		patch.PeriodLength = &value
	}

	if input.PeriodStartDateRaw != nil {
		if location == nil {
			location = time.UTC
		}
		rawDate := strings.TrimSpace(*input.PeriodStartDateRaw)
		parsedDay, err := time.ParseInLocation("2006-01-02", rawDate, location)
		if err != nil {
			return CycleSettingsPatch{}, ErrPeriodStartDateInvalid
		}
		day := DateAtLocation(parsedDay, location)
		patch.PeriodStartDate = &day
	}

	return patch, nil
}
