package models

import "errors"

var (
	ErrValidacao     = errors.New("dados inválidos")
	ErrNaoEncontrado = errors.New("registro não encontrado")
)
