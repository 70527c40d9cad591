package notify

import (
	"fmt"
	"strings"

	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
)

// reservationMessage renders the operator's new-booking notification. The
// wording matches what the operators are used to reading, so change it
// carefully.
func reservationMessage(p property.Property, r *reservation.Reservation, q pricing.Quote) string {
	refund := "환불불가"
	if r.Refundable {
		refund = "환불가능"
	}
	barbecue := "N"
	if r.Barbecue {
		barbecue = "Y"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 신규 예약이 들어왔습니다.\n\n", p.Name)
	fmt.Fprintf(&b, "기간: %s\n\n", stayPeriod(r))
	fmt.Fprintf(&b, "이름: %s\n\n", r.GuestName)
	fmt.Fprintf(&b, "전화번호: %s\n\n", r.GuestPhone)
	fmt.Fprintf(&b, "인원수: %d명, 영유아 %d명, 반려견 %d마리\n\n",
		r.Party.Guests, r.Party.Infants, r.Party.Pets)
	fmt.Fprintf(&b, "추가침구: %d개\n\n", r.Bedding)
	fmt.Fprintf(&b, "바베큐 이용여부: %s\n\n", barbecue)
	if r.Purpose != "" {
		fmt.Fprintf(&b, "이용목적: %s\n\n", r.Purpose)
	}
	fmt.Fprintf(&b, "이용금액: %s\n\n", r.Price.Format())
	if q.Deposit > 0 {
		fmt.Fprintf(&b, "보증금 포함: %s\n\n", q.Deposit.Format())
	}
	fmt.Fprintf(&b, "환불옵션: %s", refund)
	return b.String()
}

func stayPeriod(r *reservation.Reservation) string {
	switch {
	case r.Hours != nil:
		return fmt.Sprintf("%s %02d시~%02d시",
			r.Hours.Day.String(), r.Hours.StartHour, r.Hours.EndHour)
	case r.Weeks > 0:
		return fmt.Sprintf("%s부터 %d주", r.Range.CheckIn.String(), r.Weeks)
	default:
		return fmt.Sprintf("%s,%s", r.Range.CheckIn.String(), r.Range.CheckOut.String())
	}
}

func confirmedMessage(p property.Property, r *reservation.Reservation) string {
	return fmt.Sprintf("✅ %s 예약 확정\n\n기간: %s\n\n이름: %s\n\n고객에게 확정 문자를 발송했습니다.",
		p.Name, stayPeriod(r), r.GuestName)
}

func syncAlertMessage(p property.Property, reason string) string {
	return fmt.Sprintf("⚠️ iCal 동기화 실패\n%s: %s", p.Name, reason)
}

func smsOutcomeMessage(p property.Property, phone string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s 예약 안내문자 발송 실패 (%s): %v", p.Name, phone, err)
	}
	return fmt.Sprintf("%s 예약 안내문자 발송 완료 (%s)", p.Name, phone)
}
