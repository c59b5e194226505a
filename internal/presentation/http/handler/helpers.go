package handler

import (
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetStaffID extracts the authenticated staff ID from the Gin context
func GetStaffID(c *gin.Context) *uuid.UUID {
	id := middleware.GetStaffID(c)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// GetStaffRole extracts the authenticated staff role from the Gin context
func GetStaffRole(c *gin.Context) string {
	return middleware.GetStaffRole(c)
}

// IsAdmin checks if the authenticated staff member has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetStaffRole(c) == string(enum.RoleAdmin)
}
