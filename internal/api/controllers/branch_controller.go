package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"agenda/internal/services"
	"agenda/pkg/utils"
)

type BranchController struct {
	branchService services.BranchServiceInterface
}

func NewBranchController(branchService services.BranchServiceInterface) *BranchController {
	return &BranchController{branchService: branchService}
}

// Search godoc
// @Summary Paged branch search by name
// @Router /branches/search [get]
func (b *BranchController) Search(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	result, err := b.branchService.Search(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Branches fetched successfully")
}
