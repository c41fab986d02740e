package converter

import (
	"easymed-booking/internal/delivery/dto"
	"easymed-booking/internal/domain/entity"
)

func SessionToResponse(session entity.ClientSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		UserType:  string(session.UserType),
		UserEmail: session.UserEmail,
		UserName:  session.UserName,
	}
}
