package http

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/utils"
	"github.com/rmachado/landing-intake/models"
)

// submitSuccessMessage is the public confirmation returned on an accepted
// submission.
const submitSuccessMessage = "Resposta enviada com sucesso!"

// maxUploadBytes bounds the whole submission body, image included.
const maxUploadBytes = 10 << 20

func (h *Handler) formPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "form.html", http.StatusOK, struct {
		CSRFToken string
	}{
		CSRFToken: h.issueCSRFToken(),
	})
}

// submit handles POST /enviar: it accepts multipart and url-encoded form
// bodies, extracts the optional image, and hands everything to the intake
// pipeline. Responses are JSON in both outcomes.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	submission := models.Submission{
		FirstName:   r.FormValue("nome"),
		LastName:    r.FormValue("sobrenome"),
		Email:       r.FormValue("email"),
		WhatsApp:    r.FormValue("telefone"),
		City:        r.FormValue("cidade"),
		State:       r.FormValue("uf"),
		Movement:    r.FormValue("movimento"),
		Union:       r.FormValue("sindicato"),
		Category:    r.FormValue("categoria"),
		Employer:    r.FormValue("empresa"),
		Studying:    r.FormValue("estuda"),
		Course:      r.FormValue("curso"),
		Institution: r.FormValue("instituicao"),
		Message:     r.FormValue("mensagem"),
	}

	image, err := uploadedImageFromRequest(r)
	if err != nil {
		log.Err(err).Msg("error reading uploaded image from request")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Não foi possível ler a imagem enviada."}, http.StatusBadRequest)
		return
	}

	created, err := h.services.IntakeService.Submit(ctx, submission, image, clientIP(r))
	if err != nil {
		rejection := rejectionFromError(err)
		log.Debug().Err(err).Int("status", rejection.status).Msg("submission rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: rejection.message}, rejection.status)
		return
	}

	log.Info().Int64("id", created.ID).Msg("submission accepted")
	utils.WriteJSON(w, models.MessageResponse{Message: submitSuccessMessage}, http.StatusOK)
}

// uploadedImageFromRequest extracts the optional "imagem" part of a
// multipart submission. An absent file part or a url-encoded body yields a
// nil image, which the intake pipeline treats as "no attachment".
func uploadedImageFromRequest(r *http.Request) (*models.UploadedImage, error) {
	file, header, err := r.FormFile("imagem")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	return &models.UploadedImage{
		Filename: header.Filename,
		Content:  file,
	}, nil
}

// clientIP resolves the submitting client's address: the first entry of
// X-Forwarded-For when a reverse proxy is in front, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
