package services

import "math/rand/v2"

// shortIDAlphabet алфавит коротких идентификаторов.
const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateAttemptsMax лимит попыток подобрать свободный идентификатор.
const generateAttemptsMax = 10

// generateShortIdentifier генерирует случайную строку нужной длины из символов
// shortIDAlphabet. Распределение равномерное. Уникальность сама по себе не
// гарантируется, вызывающий обязан проверять коллизии по хранилищу.
// Криптостойкость не требуется: идентификатор публичный и секретом не является.
func generateShortIdentifier(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = shortIDAlphabet[rand.IntN(len(shortIDAlphabet))]
	}
	return string(b)
}
