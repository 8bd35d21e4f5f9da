package handlers

import "github.com/gin-gonic/gin"

// Handler interfaces let the route registration (and its tests) accept
// doubles instead of concrete handlers.

// AuthHandlerInterface defines the methods the auth routes need.
type AuthHandlerInterface interface {
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
}

// JobHandlerInterface defines the methods the job routes need.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// UserHandlerInterface defines the methods the user routes need.
type UserHandlerInterface interface {
	GetUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	CreateUser(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
	BulkDeleteUsers(c *gin.Context)
}

// Compile-time checks that the concrete handlers satisfy the interfaces.
var (
	_ AuthHandlerInterface = (*AuthHandler)(nil)
	_ JobHandlerInterface  = (*JobHandler)(nil)
	_ UserHandlerInterface = (*UserHandler)(nil)
)
