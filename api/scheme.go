package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisan-sahay/kisan-api/schema"
	"github.com/kisan-sahay/kisan-api/store"
)

// listSchemes is the API to browse the active government schemes
func (s *Server) listSchemes(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	query := strings.TrimSpace(c.Query("q"))

	schemes, err := s.mongoStore.ListSchemes(category, query)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": schemes})
}

// getScheme is the API to query a scheme with the caller's application of it
func (s *Server) getScheme(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	schemeID, ok := objectIDParam(c, "schemeID")
	if !ok {
		return
	}

	scheme, err := s.mongoStore.GetScheme(schemeID)
	if err != nil {
		if errors.Is(err, store.ErrSchemeNotExist) {
			abortWithEncoding(c, http.StatusNotFound, errorSchemeNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	var application *schema.SchemeApplication
	if id.Role == schema.RoleFarmer {
		application, err = s.mongoStore.GetSchemeApplication(schemeID, id.AccountID.String())
		if err != nil && !errors.Is(err, store.ErrApplicationNotExist) {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result":      scheme,
		"application": application,
	})
}

// applyScheme is the API for a farmer to apply to a scheme once
func (s *Server) applyScheme(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	if id.Role != schema.RoleFarmer {
		abortWithEncoding(c, http.StatusForbidden, withMessage(errorForbidden, "only farmers can apply to schemes"))
		return
	}

	schemeID, ok := objectIDParam(c, "schemeID")
	if !ok {
		return
	}

	var params schema.ApplicationData
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	application, err := s.mongoStore.ApplyScheme(schema.SchemeApplication{
		SchemeID:        schemeID,
		FarmerID:        id.AccountID.String(),
		ApplicationData: params,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSchemeNotExist):
			abortWithEncoding(c, http.StatusNotFound, errorSchemeNotExist)
		case errors.Is(err, store.ErrAlreadyApplied):
			abortWithEncoding(c, http.StatusConflict, errorAlreadyApplied)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": application})
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, "invalid "+name), err)
		return primitive.NilObjectID, false
	}
	return id, true
}
