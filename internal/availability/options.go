package availability

import "fmt"

// GenerateTimeOptions строит полный список вариантов "HH:MM" для
// виджетов выбора времени: от 00:00 до 24:00 не включительно, с шагом
// incrementMinutes. При некорректном шаге возвращается пустой список.
func GenerateTimeOptions(incrementMinutes int) []string {
	if incrementMinutes <= 0 {
		return []string{}
	}

	options := make([]string, 0, 24*(60/incrementMinutes))
	for hour := 0; hour < 24; hour++ {
		for j := 0; j < 60/incrementMinutes; j++ {
			minute := (j * incrementMinutes) % 60
			options = append(options, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return options
}

// EndTimeOptions варианты для выбора времени конца: тот же список без
// первого элемента. Отбрасывается только глобально первый вариант
// ("00:00"), а не первый относительно выбранного начала — сохранённая
// особенность исходного поведения.
func EndTimeOptions(incrementMinutes int) []string {
	options := GenerateTimeOptions(incrementMinutes)
	if len(options) == 0 {
		return options
	}
	return options[1:]
}
