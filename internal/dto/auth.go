package dto

type SignUpRequestDTO struct {
	Email       string `json:"email" example:"new@skillswap.com"`
	Password    string `json:"password" example:"password123"`
	DisplayName string `json:"displayName" example:"New User"`
}

type SignInRequestDTO struct {
	Email    string `json:"email" example:"demo@skillswap.com"`
	Password string `json:"password" example:"demo123"`
}

type AuthResponseDTO struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName" example:"Demo User"`
	NextPage    string `json:"nextPage" example:"dashboard"`
}
