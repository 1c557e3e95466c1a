package change_step

// ChangeStepRequest navigates the pipeline: either to a named step or one
// step backwards.
type ChangeStepRequest struct {
	Step string `json:"step,omitempty"`
	Back bool   `json:"back,omitempty"`
}
