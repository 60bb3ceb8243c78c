package dto

import (
	"stayview/internal/app/calendar"
	"stayview/internal/app/sessions"
	"stayview/internal/domain/stay"
)

type SessionState struct {
	ID                string        `json:"id"`
	TenantID          int64         `json:"tenant_id"`
	PropertyID        int64         `json:"property_id,omitempty"`
	SelectedRange     SelectedRange `json:"selected_range"`
	SelectionState    string        `json:"selection_state"`
	DisplayedMonth    string        `json:"displayed_month"`
	IsLoading         bool          `json:"is_loading"`
	ValidationMessage string        `json:"validation_message,omitempty"`
	TotalPrice        *string       `json:"total_price,omitempty"`
	Currency          Currency      `json:"currency"`
}

type SelectedRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type Currency struct {
	Code       string `json:"code"`
	Symbol     string `json:"symbol"`
	Multiplier string `json:"multiplier,omitempty"`
}

func MapSessionState(session *sessions.Session, state calendar.State) SessionState {
	out := SessionState{
		ID:                session.ID,
		TenantID:          session.Tenant.ID,
		PropertyID:        state.PropertyID,
		SelectionState:    string(state.SelectionState),
		DisplayedMonth:    state.DisplayedMonth.Format("2006-01"),
		IsLoading:         state.IsLoading,
		ValidationMessage: state.ValidationMessage,
		Currency: Currency{
			Code:   state.Currency.Code,
			Symbol: state.Currency.Symbol,
		},
	}
	if !state.Currency.Multiplier.IsZero() {
		out.Currency.Multiplier = state.Currency.Multiplier.String()
	}
	if !state.Selected.From.IsZero() {
		out.SelectedRange.From = stay.FormatDay(state.Selected.From)
	}
	if !state.Selected.To.IsZero() {
		out.SelectedRange.To = stay.FormatDay(state.Selected.To)
	}
	if state.HasTotal {
		total := state.TotalPrice.StringFixed(2)
		out.TotalPrice = &total
	}
	return out
}
