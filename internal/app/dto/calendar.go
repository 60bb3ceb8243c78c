package dto

import (
	"stayview/internal/app/calendar"
	"stayview/internal/domain/stay"
)

type CalendarDay struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	Available      bool   `json:"available"`
	Disabled       bool   `json:"disabled"`
	Selected       bool   `json:"selected"`
	BaseRate       string `json:"base_rate,omitempty"`
	HasPromotion   bool   `json:"has_promotion,omitempty"`
	DiscountedRate string `json:"discounted_rate,omitempty"`
}

type CalendarMonth struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

func MapCalendarMonth(month string, cells []calendar.DayCell) CalendarMonth {
	days := make([]CalendarDay, 0, len(cells))
	for _, cell := range cells {
		day := CalendarDay{
			Date:      stay.FormatDay(cell.Date),
			Day:       cell.Date.Day(),
			Available: cell.Available,
			Disabled:  cell.Disabled,
			Selected:  cell.Selected,
		}
		if cell.Available {
			day.BaseRate = cell.Rate.BaseRate.StringFixed(2)
			day.HasPromotion = cell.Rate.HasPromotion
			day.DiscountedRate = cell.Rate.DiscountedRate.StringFixed(2)
		}
		days = append(days, day)
	}
	return CalendarMonth{Month: month, Days: days}
}
