package services

import "errors"

var (
	ErrUnknown        = errors.New("[service]: unknown error")
	ErrRecordNotFound = errors.New("[service]: record not found")
	// ErrValidation обязательное поле пустое.
	ErrValidation = errors.New("[service]: validation error")
	// ErrEmailTaken email уже занят другим аккаунтом.
	ErrEmailTaken = errors.New("[service]: email already taken")
	// ErrInvalidCredentials единая ошибка и для неизвестного email, и для
	// неверного пароля. Различать эти случаи нельзя, иначе можно перебором
	// выяснить какие адреса зарегистрированы.
	ErrInvalidCredentials = errors.New("[service]: invalid credentials")
	// ErrUnauthenticated операция требует аутентифицированного пользователя.
	ErrUnauthenticated = errors.New("[service]: authentication required")
	// ErrForbidden запись существует, но принадлежит другому пользователю.
	ErrForbidden = errors.New("[service]: access denied")
	// ErrIdentifierExhausted не удалось подобрать свободный идентификатор за
	// отведенное число попыток. Означает дефект либо переполнение пространства
	// идентификаторов.
	ErrIdentifierExhausted = errors.New("[service]: identifier space exhausted")
)
