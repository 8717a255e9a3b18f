package model

type AuthenticateRequest struct {
	Alias     string `json:"alias"`
	Password  string `json:"password"`
	TaxNumber string `json:"taxNumber"`
}

type AuthenticateResponse struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}
