// Package memstore предоставляет реализацию репозиториев URL и пользователей
// для in-memory хранилища.
//
// Все методы репозиториев преобразуют внутренние ошибки хранилища в общие ошибки
// уровня репозитория с помощью convertErrorType:
//   - memory.ErrDuplicateKey -> repositories.ErrDuplicateKey
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package memstore
