package client

import "errors"

var (
	ErrNotFound      = errors.New("client not found")
	ErrCpfCnpjExists = errors.New("cpf/cnpj already exists")
)
