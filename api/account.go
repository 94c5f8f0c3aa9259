package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisan-sahay/kisan-api/schema"
)

// accountDetail is the API to query the current account and its profile
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateProfile is the API to update the profile of the current account.
// The role cannot be changed.
func (s *Server) accountUpdateProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var params schema.ProfileUpdate
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.FullName != nil && *params.FullName == "" {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, "full_name must not be empty"))
		return
	}

	if id.Role == schema.RoleFarmer {
		params.OrganizationName = nil
	}

	account, err := s.store.UpdateAccountProfile(id.AccountID, params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}
