package controllers

import "errors"

// Ошибки.
var (
	ErrRecordNotFound = errors.New("record not found") // Запись не найдена
	ErrInternal       = errors.New("internal error")   // Прочая ошибка
)

// Текста ответов пользователю.
const (
	MsgMustLogIn          = "You must log in to perform that action."
	MsgMustLogInView      = "You must log in to view URLs."
	MsgInvalidCredentials = "Invalid credentials provided."
	MsgRegisterBlank      = "You must provide an email and password!"
	MsgEmailTaken         = "The email you provided is being used by another account."
	MsgInvalidAddress     = "Invalid address."
	MsgForbidden          = "You do not have access to that URL."
)
