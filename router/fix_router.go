package router

import (
	"github.com/l3montree-dev/fixflow/controllers"
	"github.com/labstack/echo/v4"
)

type FixRouter struct {
	*echo.Group
}

// the approval service resolves the project of a fix itself and checks its owner
func NewFixRouter(sessionRouter SessionRouter, approvalController *controllers.ApprovalController) FixRouter {
	fixRouter := sessionRouter.Group.Group("/fixes/:fixID")
	fixRouter.POST("/approve/", approvalController.Approve)
	fixRouter.POST("/reject/", approvalController.Reject)
	return FixRouter{Group: fixRouter}
}
