package dto

type FavoritesResponse struct {
	DoctorIDs []int            `json:"doctor_ids"`
	Doctors   []DoctorResponse `json:"doctors"`
}

type FavoriteStatusResponse struct {
	DoctorID   int  `json:"doctor_id"`
	IsFavorite bool `json:"is_favorite"`
}
