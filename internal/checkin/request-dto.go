package checkin

type ScanRequest struct {
	Code string `json:"code" validate:"required,max=64"`
	Day  string `json:"day" validate:"required"`
}
