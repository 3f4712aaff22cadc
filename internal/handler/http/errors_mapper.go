package http

import (
	"errors"
	"net/http"

	"github.com/rmachado/landing-intake/internal/service"
)

// intakeRejection pairs the HTTP status with the public, submitter-facing
// message for one intake failure. Storage detail never leaves the server;
// only the generic message does.
type intakeRejection struct {
	status  int
	message string
}

var intakeRejectionMap = map[error]intakeRejection{
	service.ErrMissingRequiredFields: {http.StatusBadRequest, "Preencha todos os campos obrigatórios."},
	service.ErrInvalidEmail:          {http.StatusBadRequest, "E-mail inválido."},
	service.ErrInvalidPhone:          {http.StatusBadRequest, "Telefone inválido. Informe DDD + número (11 dígitos)."},
	service.ErrDisallowedFileType:    {http.StatusBadRequest, "Formato de imagem não permitido. Envie PNG, JPG ou GIF."},
	service.ErrPersistenceFailed:     {http.StatusInternalServerError, "Não foi possível salvar sua resposta. Tente novamente."},
}

func rejectionFromError(err error) intakeRejection {
	for target, rejection := range intakeRejectionMap {
		if errors.Is(err, target) {
			return rejection
		}
	}
	return intakeRejection{http.StatusInternalServerError, "Não foi possível salvar sua resposta. Tente novamente."}
}
