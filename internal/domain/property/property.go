package property

import (
	"errors"

	"namunjari/internal/domain/shared/money"
)

var ErrUnknownProperty = errors.New("property: unknown property id")

// ID identifies one rentable space.
type ID string

const (
	Forest ID = "forest"
	Blon   ID = "blon"
	OnOff  ID = "on_off"
	Space  ID = "space"
	Mukho  ID = "mukho"
)

// Mode is how a property is booked.
type Mode string

const (
	ModeNightly Mode = "NIGHTLY" // check-in/check-out date pair
	ModeHourly  Mode = "HOURLY"  // contiguous hour set within one day
	ModeWeekly  Mode = "WEEKLY"  // anchor day plus whole weeks
)

// SeasonRates holds per-night rates for one season. Properties that price
// Friday and Saturday identically fill both with the weekend rate.
type SeasonRates struct {
	Weekday  money.Won
	Friday   money.Won
	Saturday money.Won
	Holiday  money.Won
}

// NightlyRateTable prices nightly stays.
type NightlyRateTable struct {
	Normal SeasonRates
	Summer SeasonRates

	ExtraGuest money.Won // per extra guest per night beyond FreeHeadcount
	Pet        money.Won // per pet per night
	Barbecue   money.Won // flat per stay

	FreeHeadcount int // guests included in the base rate
	MinHeadcount  int // billed headcount floor (0 = none)
}

// HourlyRateTable prices hourly use. Weekend here means Friday through
// Sunday, matching how the hourly space bills.
type HourlyRateTable struct {
	Weekday money.Won
	Weekend money.Won

	ExtraGuest    money.Won // per extra guest per hour
	FreeHeadcount int
}

// WeeklyRateTable prices whole weeks. The deposit is collected up front and
// returned after the stay; it is reported as part of the amount to transfer.
type WeeklyRateTable struct {
	RentPerWeek       money.Won
	ManagementPerWeek money.Won
	CleaningFee       money.Won
	Deposit           money.Won

	MinWeeks int
	MaxWeeks int
}

// Property bundles everything that varies per space: booking mode, rate
// table, party limits, payment and notification routing. Adding a property
// is a new record here, not new code.
type Property struct {
	ID       ID
	Name     string // guest-facing Korean name
	Mode     Mode
	Bookable bool // false for inquiry-only listings

	Nightly *NightlyRateTable
	Hourly  *HourlyRateTable
	Weekly  *WeeklyRateTable

	MaxGuests  int
	MaxInfants int
	MaxPets    int

	BankAccount string
	ChannelKey  string // notification channel (chat id config key)
	SyncFeed    bool   // has an external calendar feed to reconcile
}

var registry = map[ID]Property{
	Forest: {
		ID:       Forest,
		Name:     "백년한옥별채",
		Mode:     ModeNightly,
		Bookable: true,
		Nightly: &NightlyRateTable{
			Normal:        SeasonRates{Weekday: 200000, Friday: 300000, Saturday: 300000, Holiday: 300000},
			Summer:        SeasonRates{Weekday: 300000, Friday: 300000, Saturday: 300000, Holiday: 300000},
			ExtraGuest:    20000,
			Pet:           30000,
			Barbecue:      30000,
			FreeHeadcount: 2,
		},
		MaxGuests:   6,
		MaxInfants:  4,
		MaxPets:     2,
		BankAccount: "카카오 79420205681 남은비",
		ChannelKey:  "forest",
		SyncFeed:    true,
	},
	Blon: {
		ID:       Blon,
		Name:     "블로뉴숲",
		Mode:     ModeNightly,
		Bookable: true,
		Nightly: &NightlyRateTable{
			Normal:        SeasonRates{Weekday: 160000, Friday: 200000, Saturday: 250000, Holiday: 300000},
			Summer:        SeasonRates{Weekday: 250000, Friday: 300000, Saturday: 300000, Holiday: 300000},
			ExtraGuest:    15000,
			Pet:           30000,
			Barbecue:      20000,
			FreeHeadcount: 4,
			MinHeadcount:  4,
		},
		MaxGuests:   8,
		MaxInfants:  4,
		MaxPets:     2,
		BankAccount: "카카오 79420205681 남은비",
		ChannelKey:  "blon",
		SyncFeed:    true,
	},
	OnOff: {
		ID:       OnOff,
		Name:     "온오프 스페이스",
		Mode:     ModeWeekly,
		Bookable: true,
		Weekly: &WeeklyRateTable{
			RentPerWeek:       350000,
			ManagementPerWeek: 50000,
			CleaningFee:       60000,
			Deposit:           330000,
			MinWeeks:          1,
			MaxWeeks:          12,
		},
		MaxGuests:   4,
		MaxInfants:  2,
		MaxPets:     2,
		BankAccount: "카카오 79420205681 남은비",
		ChannelKey:  "on_off",
	},
	Space: {
		ID:       Space,
		Name:     "온오프 스페이스 대관",
		Mode:     ModeHourly,
		Bookable: true,
		Hourly: &HourlyRateTable{
			Weekday:       4000,
			Weekend:       6000,
			ExtraGuest:    3000,
			FreeHeadcount: 2,
		},
		MaxGuests:   10,
		BankAccount: "카카오 3333058451192 남은비",
		ChannelKey:  "space",
	},
	Mukho: {
		ID:         Mukho,
		Name:       "묵호 바다집",
		Mode:       ModeNightly,
		Bookable:   false, // inquiry only, no online booking flow
		ChannelKey: "mukho",
	},
}

// Get resolves a property by id.
func Get(id ID) (Property, error) {
	p, ok := registry[id]
	if !ok {
		return Property{}, ErrUnknownProperty
	}
	return p, nil
}

// All lists every registered property in a stable order.
func All() []Property {
	order := []ID{Forest, Blon, OnOff, Space, Mukho}
	out := make([]Property, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}

// SyncTargets lists properties with an external calendar feed.
func SyncTargets() []Property {
	var out []Property
	for _, p := range All() {
		if p.SyncFeed {
			out = append(out, p)
		}
	}
	return out
}
