package select_date

// SelectDateRequest changes the session's selected date.
type SelectDateRequest struct {
	Date string `json:"date"`
}
