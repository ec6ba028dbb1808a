// internal/api/handlers/common.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"agribridge-api-server/internal/store"
)

// Store is the slice of the document adapter the collection handlers need.
type Store interface {
	store.Creator
	store.Lister
}

// bindError answers a binding failure with a message naming the failing
// field and the violated constraint.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				msgs = append(msgs, fmt.Sprintf("%s: failed '%s=%s' constraint", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s: failed '%s' constraint", fe.Field(), fe.Tag()))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(msgs, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
