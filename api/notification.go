package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kisan-sahay/kisan-api/store"
)

const defaultNotificationLimit = 50

// listNotifications is the API to read the inbox of the current account
func (s *Server) listNotifications(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	if err != nil || limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}

	notifications, err := s.mongoStore.ListNotifications(id.AccountID.String(), limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": notifications})
}

// readNotification is the API to mark a message of the inbox as read
func (s *Server) readNotification(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	notificationID, ok := objectIDParam(c, "notificationID")
	if !ok {
		return
	}

	if err := s.mongoStore.MarkNotificationRead(id.AccountID.String(), notificationID); err != nil {
		if errors.Is(err, store.ErrNotificationNotExist) {
			abortWithEncoding(c, http.StatusNotFound, errorNotificationNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
