package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisan-sahay/kisan-api/schema"
)

// dashboard is the API for the summary page of the current account
func (s *Server) dashboard(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	switch id.Role {
	case schema.RoleFarmer:
		d, err := s.helps.FarmerDashboard(id)
		if err != nil {
			abortWithHelpError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": d})
	case schema.RoleNGO, schema.RoleDonor:
		d, err := s.helps.HelperDashboard(id)
		if err != nil {
			abortWithHelpError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": d})
	case schema.RoleAdmin:
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
	default:
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
	}
}
