package services

import (
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/security"
	"github.com/QuillstackMedia/quillstack-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles editor authentication and JWT operations. Edit-mode
// rendering (editable-field metadata) is only served to authenticated
// editors.
type AuthService struct {
	logger *logging.ChanneledLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		logger: logger,
	}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AuthenticateEditor validates the editor password and issues an edit-mode
// token. EditorPassword is stored as a bcrypt hash.
func (a *AuthService) AuthenticateEditor(password string) *AuthResult {
	if config.EditorPassword == "" || config.JWTSecret == "" {
		a.logger.Auth().Warn("Editor login attempted without configured credentials")
		return &AuthResult{Success: false, Error: "editor authentication is not configured"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.EditorPassword), []byte(password)); err != nil {
		a.logger.Auth().Warn("Editor login failed")
		return &AuthResult{Success: false, Error: "invalid credentials"}
	}

	sessionID := security.GenerateULID()
	token, err := security.GenerateEditorToken(sessionID, config.EditorTokenIssuer, config.JWTSecret, config.EditorTokenTTL)
	if err != nil {
		a.logger.Auth().Error("Failed to sign editor token", "error", err.Error())
		return &AuthResult{Success: false, Error: "failed to issue token"}
	}

	a.logger.Auth().Info("Editor authenticated", "sessionId", sessionID)

	return &AuthResult{Token: token, Role: "editor", Success: true}
}

// ValidateEditorToken checks a bearer token and reports whether it grants
// edit-mode access.
func (a *AuthService) ValidateEditorToken(tokenString string) bool {
	if tokenString == "" || config.JWTSecret == "" {
		return false
	}

	claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
	if err != nil {
		return false
	}

	return security.EditorRoleFromClaims(claims) == "editor"
}
