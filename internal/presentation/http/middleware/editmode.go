package middleware

import (
	"strings"

	"github.com/QuillstackMedia/quillstack-go/internal/application/services"
	"github.com/gin-gonic/gin"
)

// EditModeMiddleware resolves whether the request comes from an
// authenticated editor session. Edit mode controls whether fragments carry
// editable-field metadata; anonymous requests get clean markup.
func EditModeMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.GetHeader("X-Quillstack-Edit-Session")
		}

		c.Set("editMode", authService.ValidateEditorToken(token))
		c.Next()
	}
}

// GetEditMode retrieves the edit-mode flag from gin context
func GetEditMode(c *gin.Context) bool {
	editMode, exists := c.Get("editMode")
	if !exists {
		return false
	}

	mode, ok := editMode.(bool)
	return ok && mode
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
