package di

import (
	"jamat/shared/date"
	"jamat/shared/timezone"
)

func today() func() date.Date {
	return timezone.Today
}
