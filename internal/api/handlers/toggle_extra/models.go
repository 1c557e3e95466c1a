package toggle_extra

// ToggleExtraRequest adds or removes an add-on service.
type ToggleExtraRequest struct {
	ServiceID string `json:"serviceId"`
}
