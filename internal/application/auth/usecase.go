package auth

import (
	"crypto/subtle"

	"github.com/tu-usuario/lunch-orders/internal/application/dto"
	"github.com/tu-usuario/lunch-orders/internal/domain"
	"github.com/tu-usuario/lunch-orders/pkg/config"
	"github.com/tu-usuario/lunch-orders/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin único rol de la aplicación: el flag de administrador compartido.
const RoleAdmin = "admin"

// AdminAuthUseCase login del único administrador, definido por configuración.
// Reemplaza la sesión de cookie del sistema original por un JWT explícito que
// cada handler protegido recibe como Bearer token.
type AdminAuthUseCase struct {
	admin  config.AdminConfig
	jwtCfg config.JWTConfig
}

// NewAdminAuthUseCase construye el caso de uso de auth.
func NewAdminAuthUseCase(admin config.AdminConfig, jwtCfg config.JWTConfig) *AdminAuthUseCase {
	return &AdminAuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña del admin y genera el JWT.
// Si hay ADMIN_PASSWORD_HASH configurado se compara con bcrypt; si no,
// comparación en tiempo constante contra ADMIN_PASSWORD.
func (uc *AdminAuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.credentialsOK(in.Username, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func (uc *AdminAuthUseCase) credentialsOK(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.admin.Username)) == 1

	var passOK bool
	if uc.admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(password)) == nil
	} else {
		if uc.admin.Password == "" {
			// Sin contraseña configurada no hay login posible.
			return false
		}
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(uc.admin.Password)) == 1
	}
	return userOK && passOK
}
