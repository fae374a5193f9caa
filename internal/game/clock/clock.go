// Package clock implements the in-game world clock: a continuous hour
// value, day counter, derived time-of-day period, and stochastic weather.
package clock

import (
	"fmt"

	"github.com/manus-games/shadowcity/internal/game/rng"
)

// Period is a named phase of the game day, derived purely from the hour.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodNight     Period = "night"
)

// Weather is the current sky condition.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
)

// weatherStates is the uniform re-roll pool. A re-roll may repeat the
// current state.
var weatherStates = []Weather{WeatherSunny, WeatherCloudy, WeatherRainy}

// weatherChangeChance is the probability of a re-roll per Advance call.
const weatherChangeChance = 0.1

// PeriodForHour returns the time-of-day period for an hour in [0, 24).
//
// Postcondition: [6,12) is morning, [12,18) is afternoon, [18,22) is
// evening, everything else is night.
func PeriodForHour(hour float64) Period {
	switch {
	case hour >= 6 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 18:
		return PeriodAfternoon
	case hour >= 18 && hour < 22:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// WorldClock tracks in-game time and weather for one session.
//
// Invariant: Hour is always in [0, 24); Day is >= 1 and only increases;
// Period() is always the pure function of Hour defined by PeriodForHour.
type WorldClock struct {
	Hour    float64 `json:"hour"`
	Day     int     `json:"day"`
	Weather Weather `json:"weather"`
}

// New returns a WorldClock starting on day 1 at startHour with sunny
// weather.
//
// Precondition: startHour must be in [0, 24).
func New(startHour float64) *WorldClock {
	if startHour < 0 || startHour >= 24 {
		panic(fmt.Sprintf("clock: New called with hour %g outside [0, 24)", startHour))
	}
	return &WorldClock{Hour: startHour, Day: 1, Weather: WeatherSunny}
}

// Period returns the current time-of-day period.
func (c *WorldClock) Period() Period {
	return PeriodForHour(c.Hour)
}

// Advance moves the clock forward by the given number of in-game minutes
// and re-rolls the weather with 10% probability, drawing from src.
//
// Precondition: minutes >= 0; src must be non-nil.
// Postcondition: Hour remains in [0, 24); Day increases by exactly
// floor((oldHour + minutes/60) / 24).
func (c *WorldClock) Advance(minutes int, src rng.Source) {
	if minutes < 0 {
		panic("clock: Advance called with negative minutes")
	}
	c.Hour += float64(minutes) / 60
	for c.Hour >= 24 {
		c.Hour -= 24
		c.Day++
	}

	if src.Float64() < weatherChangeChance {
		c.Weather = weatherStates[src.Intn(len(weatherStates))]
	}
}

// TimeString returns the clock in "HH:MM" format.
func (c *WorldClock) TimeString() string {
	h := int(c.Hour)
	m := int((c.Hour - float64(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
