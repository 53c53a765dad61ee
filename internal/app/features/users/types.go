// internal/app/features/users/types.go
package users

import (
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/alqabasi/driver-dashboard-mini/internal/domain/models"
)

type listData struct {
	viewdata.BaseVM
	SearchQuery string
	Shown       int
	Total       int
	Rows        []models.User
}

type formData struct {
	viewdata.BaseVM
	Error       string
	FullName    string
	MobilePhone string
}

type editData struct {
	viewdata.BaseVM
	Error       string
	UserID      string
	FullName    string
	MobilePhone string
}
