package services

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/tinyapp/internal/db"
	"github.com/fsdevblog/tinyapp/internal/repositories/memstore"
	"github.com/fsdevblog/tinyapp/internal/repositories/sql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	URLService  *URLService
	UserService *UserService
}

func Factory(conn any, sType ServiceType, logger *logrus.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger), nil
	case ServiceTypeInMemory:
		return getInMemoryServices(), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *logrus.Logger) *Services {
	return &Services{
		URLService:  NewURLService(sql.NewURLRepo(conn, logger)),
		UserService: NewUserService(sql.NewUserRepo(conn, logger)),
	}
}

func getInMemoryServices() *Services {
	// У ссылок и пользователей раздельные хранилища: пространства ключей
	// не должны пересекаться.
	return &Services{
		URLService:  NewURLService(memstore.NewURLRepo(db.NewMemStorage())),
		UserService: NewUserService(memstore.NewUserRepo(db.NewMemStorage())),
	}
}
