package handlers

import (
	"net/http"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/policy"

	"github.com/gin-gonic/gin"
)

// PolicyHandler exposes the field policy table so a form renderer can lock
// and require fields the same way the submit gate will.
type PolicyHandler struct{}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// GetFieldPolicies godoc
// @Summary      Field policy for the caller's role
// @Description  Returns, per job form field, whether the caller may edit it and must fill it in the given mode.
// @Tags         policy
// @Produce      json
// @Param        mode  query  string  true  "Form mode"  Enums(create, edit)
// @Success      200  {object}  map[string]policy.FieldPolicy
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /policy/fields [get]
func (h *PolicyHandler) GetFieldPolicies(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	mode := policy.Mode(c.Query("mode"))
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be create or edit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":     mode,
		"role":     identity.Role,
		"fields":   policy.Fields(identity.Role, mode),
		"statuses": policy.AllowedStatuses(identity.Role, mode),
	})
}
