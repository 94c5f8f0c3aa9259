package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kisan-sahay/kisan-api/help"
	"github.com/kisan-sahay/kisan-api/schema"
)

const maxHelpListLimit = 100

// askForHelp is the API for a farmer to open a help request
func (s *Server) askForHelp(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var params help.CreateParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	req, err := s.helps.Create(id, params)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// listHelps is the API to browse help requests. Farmers only get their own.
func (s *Server) listHelps(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var params struct {
		Status   string `form:"status"`
		Urgency  string `form:"urgency"`
		Category string `form:"category"`
		Query    string `form:"q"`
		Limit    int    `form:"limit"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter := schema.HelpFilter{
		Urgency:  schema.Urgency(params.Urgency),
		Category: strings.TrimSpace(params.Category),
		Query:    strings.TrimSpace(params.Query),
		Limit:    params.Limit,
	}

	if filter.Urgency != "" && !filter.Urgency.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, "unknown urgency"))
		return
	}

	if params.Status != "" {
		for _, v := range strings.Split(params.Status, ",") {
			status := schema.HelpStatus(strings.TrimSpace(v))
			if !status.Valid() {
				abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, "unknown status "+v))
				return
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if filter.Limit <= 0 || filter.Limit > maxHelpListLimit {
		filter.Limit = maxHelpListLimit
	}

	helps, err := s.helps.List(id, filter)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": helps})
}

// getHelp is the API to query a help request with what the caller can do on it
func (s *Server) getHelp(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	helpID, ok := uuidParam(c, "helpID")
	if !ok {
		return
	}

	req, err := s.helps.Get(id, helpID)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	var next []schema.HelpStatus
	if help.CanAdvance(*req, id.AccountID) {
		next = help.NextStatuses(req.Status)
	}

	c.JSON(http.StatusOK, gin.H{
		"result":        req,
		"can_respond":   help.CanRespond(*req, id.AccountID, id.Role),
		"can_accept":    help.CanAccept(*req, id.AccountID),
		"next_statuses": next,
	})
}

// updateHelpStatus is the API for the participants of a request to move it forward or cancel it
func (s *Server) updateHelpStatus(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	helpID, ok := uuidParam(c, "helpID")
	if !ok {
		return
	}

	var params struct {
		Status schema.HelpStatus `json:"status" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	req, err := s.helps.AdvanceStatus(id, helpID, params.Status)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// listHelpResponses is the API to list the offers made on a request
func (s *Server) listHelpResponses(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	helpID, ok := uuidParam(c, "helpID")
	if !ok {
		return
	}

	responses, err := s.helps.ListResponses(id, helpID)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": responses})
}

// respondToHelp is the API for an NGO or donor to offer help
func (s *Server) respondToHelp(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	helpID, ok := uuidParam(c, "helpID")
	if !ok {
		return
	}

	var params help.ResponseParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	response, err := s.helps.SubmitResponse(id, helpID, params)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": response})
}

// acceptHelpResponse is the API for the owner to accept one offer
func (s *Server) acceptHelpResponse(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	helpID, ok := uuidParam(c, "helpID")
	if !ok {
		return
	}

	responseID, ok := uuidParam(c, "responseID")
	if !ok {
		return
	}

	req, err := s.helps.AcceptResponse(id, helpID, responseID)
	if err != nil {
		abortWithHelpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// abortWithHelpError maps the error kinds of the help engine to responses
func abortWithHelpError(c *gin.Context, err error) {
	switch {
	case help.IsValidation(err):
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, err.Error()), err)
	case help.IsAuthorization(err):
		abortWithEncoding(c, http.StatusForbidden, withMessage(errorForbidden, err.Error()), err)
	case help.IsNotFound(err):
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
	case help.IsState(err):
		abortWithEncoding(c, http.StatusConflict, withMessage(errorStaleState, err.Error()), err)
	case help.IsTransport(err):
		log.WithError(err).Error("help store")
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreUnavailable, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, "invalid "+name), err)
		return uuid.Nil, false
	}
	return id, true
}
