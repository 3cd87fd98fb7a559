package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quizmaker/internal/services"
)

// viewerFrom builds the identity the entitlement checks run on. Requests
// without a valid token come through as anonymous viewers.
func viewerFrom(c *gin.Context) services.Viewer {
	id := c.GetString("user_id")
	if id == "" {
		return services.Viewer{}
	}
	accountID, err := uuid.Parse(id)
	if err != nil {
		return services.Viewer{}
	}
	return services.Viewer{
		AccountID: &accountID,
		Role:      c.GetString("Role"),
	}
}
