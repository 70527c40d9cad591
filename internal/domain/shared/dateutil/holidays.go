package dateutil

// Korean public holidays, including substitute holidays, maintained per year.
var holidays = map[string]struct{}{
	"2025-01-01": {}, // 신정
	"2025-01-27": {}, // 임시공휴일
	"2025-01-28": {}, // 설날 연휴
	"2025-01-29": {}, // 설날
	"2025-01-30": {}, // 설날 연휴
	"2025-03-01": {}, // 삼일절
	"2025-03-03": {}, // 삼일절 대체공휴일
	"2025-05-05": {}, // 어린이날, 부처님오신날
	"2025-05-06": {}, // 대체공휴일
	"2025-06-06": {}, // 현충일
	"2025-08-15": {}, // 광복절
	"2025-10-03": {}, // 개천절
	"2025-10-05": {}, // 추석 연휴
	"2025-10-06": {}, // 추석
	"2025-10-07": {}, // 추석 연휴
	"2025-10-08": {}, // 추석 대체공휴일
	"2025-10-09": {}, // 한글날
	"2025-12-25": {}, // 성탄절
	"2026-01-01": {}, // 신정
	"2026-02-16": {}, // 설날 연휴
	"2026-02-17": {}, // 설날
	"2026-02-18": {}, // 설날 연휴
	"2026-03-01": {}, // 삼일절
	"2026-03-02": {}, // 삼일절 대체공휴일
	"2026-05-05": {}, // 어린이날
	"2026-05-24": {}, // 부처님오신날
	"2026-05-25": {}, // 대체공휴일
	"2026-06-06": {}, // 현충일
	"2026-08-15": {}, // 광복절
	"2026-08-17": {}, // 광복절 대체공휴일
	"2026-09-24": {}, // 추석 연휴
	"2026-09-25": {}, // 추석
	"2026-09-26": {}, // 추석 연휴
	"2026-10-03": {}, // 개천절
	"2026-10-05": {}, // 개천절 대체공휴일
	"2026-10-09": {}, // 한글날
	"2026-12-25": {}, // 성탄절
}

// IsHoliday reports whether the day is a listed public holiday.
func IsHoliday(d Day) bool {
	_, ok := holidays[d.String()]
	return ok
}
