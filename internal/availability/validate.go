package availability

// ValidateWindowEdit проверяет правку одного поля окна до её
// применения. Отклоняется только правка начала при уже заполненном
// конце, если новое значение не раньше конца; вызывающий обязан
// оставить прежнее значение. Правки конца симметрично НЕ проверяются.
//
// Строки "HH:MM" сравниваются лексикографически: для этого формата
// порядок совпадает с хронологическим.
func ValidateWindowEdit(w Window, field, newValue string) error {
	if field != FieldStartTime {
		return nil
	}
	if newValue == "" || w.EndTime == "" {
		return nil
	}
	if newValue >= w.EndTime {
		return ErrInvalidOrdering
	}
	return nil
}
