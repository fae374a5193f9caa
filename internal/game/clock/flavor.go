package clock

// FlavorText returns an atmospheric sentence for the current period and
// weather, shown alongside location descriptions.
//
// Precondition: period and weather are valid enum values.
// Postcondition: Returns a non-empty string.
func FlavorText(period Period, weather Weather) string {
	switch weather {
	case WeatherRainy:
		switch period {
		case PeriodMorning:
			return "Rain drums on the awnings as the city grudgingly wakes."
		case PeriodAfternoon:
			return "A steady downpour turns the streets to mirrors of grey."
		case PeriodEvening:
			return "Neon signs smear across the wet asphalt."
		default:
			return "Rain hisses through the empty streets of the night."
		}
	case WeatherCloudy:
		switch period {
		case PeriodMorning:
			return "A dull overcast hangs over the waking city."
		case PeriodAfternoon:
			return "Low clouds press down on the rooftops."
		case PeriodEvening:
			return "The overcast sky swallows the last of the daylight."
		default:
			return "Clouds blot out the stars above the sleeping city."
		}
	default: // sunny
		switch period {
		case PeriodMorning:
			return "Morning light floods the streets, casting long shadows."
		case PeriodAfternoon:
			return "The sun hangs high overhead, bright and relentless."
		case PeriodEvening:
			return "The sky burns orange as the sun sinks behind the skyline."
		default:
			return "A clear night sky stretches over the city."
		}
	}
}

// IsDark reports whether a period reduces street visibility.
//
// Postcondition: Returns true only for night.
func IsDark(period Period) bool {
	return period == PeriodNight
}
