package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/daterange"
	"namunjari/internal/domain/shared/dateutil"
)

func sampleReservation(t *testing.T) (property.Property, *reservation.Reservation) {
	t.Helper()
	prop, err := property.Get(property.Forest)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	r, err := daterange.New(
		dateutil.NewDay(2025, time.November, 10),
		dateutil.NewDay(2025, time.November, 12),
	)
	if err != nil {
		t.Fatalf("range failed: %v", err)
	}
	res := &reservation.Reservation{
		ID:         "res-1",
		Property:   prop.ID,
		Range:      r,
		GuestName:  "김철수",
		GuestPhone: "01012345678",
		Party:      reservation.Party{Guests: 5, Infants: 1, Pets: 1},
		Bedding:    1,
		Barbecue:   true,
		Price:      440000,
		Refundable: false,
	}
	return prop, res
}

func TestReservationMessage(t *testing.T) {
	prop, res := sampleReservation(t)
	msg := reservationMessage(prop, res, pricing.Quote{Total: 440000})

	for _, want := range []string{
		"백년한옥별채 신규 예약이 들어왔습니다.",
		"기간: 2025-11-10,2025-11-12",
		"이름: 김철수",
		"전화번호: 01012345678",
		"인원수: 5명, 영유아 1명, 반려견 1마리",
		"추가침구: 1개",
		"바베큐 이용여부: Y",
		"이용금액: 440,000",
		"환불옵션: 환불불가",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestReservationMessageHourly(t *testing.T) {
	prop, _ := property.Get(property.Space)
	h, _ := daterange.NewHourRange(dateutil.NewDay(2025, time.November, 12), 9, 12)
	res := &reservation.Reservation{
		ID:         "res-2",
		Property:   prop.ID,
		Hours:      &h,
		GuestName:  "이영희",
		GuestPhone: "01099998888",
		Party:      reservation.Party{Guests: 2},
		Purpose:    "스터디 모임",
		Price:      12000,
		Refundable: true,
	}
	msg := reservationMessage(prop, res, pricing.Quote{Total: 12000})
	if !strings.Contains(msg, "2025-11-12 09시~12시") {
		t.Errorf("message missing hourly period:\n%s", msg)
	}
	if !strings.Contains(msg, "이용목적: 스터디 모임") {
		t.Errorf("message missing purpose:\n%s", msg)
	}
}

func TestReservationMessageWeeklyIncludesDeposit(t *testing.T) {
	prop, _ := property.Get(property.OnOff)
	r, _ := daterange.New(
		dateutil.NewDay(2025, time.September, 1),
		dateutil.NewDay(2025, time.September, 15),
	)
	res := &reservation.Reservation{
		ID:         "res-3",
		Property:   prop.ID,
		Range:      r,
		Weeks:      2,
		GuestName:  "박민수",
		GuestPhone: "01055554444",
		Party:      reservation.Party{Guests: 2},
		Price:      1190000,
		Refundable: true,
	}
	msg := reservationMessage(prop, res, pricing.Quote{Deposit: 330000, Total: 1190000})
	if !strings.Contains(msg, "2025-09-01부터 2주") {
		t.Errorf("message missing weekly period:\n%s", msg)
	}
	if !strings.Contains(msg, "보증금 포함: 330,000") {
		t.Errorf("message missing deposit line:\n%s", msg)
	}
}

func TestConfirmedMessage(t *testing.T) {
	prop, res := sampleReservation(t)
	msg := confirmedMessage(prop, res)
	for _, want := range []string{
		"백년한옥별채 예약 확정",
		"기간: 2025-11-10,2025-11-12",
		"이름: 김철수",
		"확정 문자를 발송했습니다",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSyncAlertMessage(t *testing.T) {
	prop, _ := property.Get(property.Blon)
	msg := syncAlertMessage(prop, "fetch feed: unexpected status 500")
	if !strings.Contains(msg, "iCal 동기화 실패") || !strings.Contains(msg, "블로뉴숲") {
		t.Errorf("alert = %q", msg)
	}
}

func TestSMSOutcomeMessage(t *testing.T) {
	prop, _ := property.Get(property.Forest)
	ok := smsOutcomeMessage(prop, "01012345678", nil)
	if !strings.Contains(ok, "발송 완료") {
		t.Errorf("success message = %q", ok)
	}
	bad := smsOutcomeMessage(prop, "01012345678", errors.New("carrier down"))
	if !strings.Contains(bad, "발송 실패") || !strings.Contains(bad, "carrier down") {
		t.Errorf("failure message = %q", bad)
	}
}
