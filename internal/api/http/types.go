package http

import "github.com/damataprodutora/portfolio-backend/internal/portfolio"

// StatusResponse is the common {success, message} envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginReq struct {
	Password string `json:"password"`
}

type resetPasswordReq struct {
	SecretAnswer string `json:"secretAnswer"`
	NewPassword  string `json:"newPassword"`
}

type secretQuestionResp struct {
	Success  bool   `json:"success"`
	Question string `json:"question"`
}

type uploadResp struct {
	Success bool     `json:"success"`
	URLs    []string `json:"urls"`
}

type savePortfolioReq struct {
	Data []portfolio.Project `json:"data"`
}
