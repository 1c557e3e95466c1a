package select_service

// SelectServiceRequest picks the main service. Advance defaults to false:
// the user usually keeps choosing add-ons on the same step.
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
	Advance   bool   `json:"advance,omitempty"`
}
