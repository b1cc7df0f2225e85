// Package sql предоставляет реализацию репозиториев URL и пользователей поверх gorm (sqlite).
//
// Все методы репозиториев преобразуют ошибки БД в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
