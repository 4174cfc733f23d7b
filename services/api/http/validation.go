package http

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var cellIDPattern = regexp.MustCompile(`^C[1-6]-[1-6]$`)

// registerValidations installs the custom binding tags the v1 request
// structs rely on. gin exposes its validator engine for exactly this.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cellid", func(fl validator.FieldLevel) bool {
			return cellIDPattern.MatchString(fl.Field().String())
		})
	}
}

type selectCellRequest struct {
	CellID string `json:"cell_id" binding:"required,cellid"`
}

type submitReportRequest struct {
	CellID string `json:"cell_id" binding:"omitempty,cellid"`
	Type   string `json:"type" binding:"required"`
	Notes  string `json:"notes" binding:"required,max=500"`
}

type dispatchAlertRequest struct {
	Team string `json:"team" binding:"required,max=64"`
}

type awardPointsRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}
